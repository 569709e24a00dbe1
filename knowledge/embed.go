package knowledge

import (
	"embed"
	"io/fs"
)

//go:embed content
var embedded embed.FS

// Content returns the documentation tree compiled into the binary.
func Content() fs.FS {
	sub, err := fs.Sub(embedded, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default loads the embedded documentation tree.
func Default() (*Base, error) {
	return Load(Content())
}
