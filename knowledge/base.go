package knowledge

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/jonwraymond/formdocs/catalog"
)

// Category identifies the kind of a knowledge document.
type Category string

const (
	CategoryControl          Category = "control"
	CategorySpecValue        Category = "spec-value"
	CategoryControlsOverview Category = "overview-controls"
	CategorySpecsOverview    Category = "overview-specs"
	CategorySchema           Category = "schema"
)

// Content layout, relative to the root of the documentation tree.
const (
	ControlsDir          = "controls"
	SpecValuesDir        = "spec-values"
	ControlsOverviewFile = "controls-overview.md"
	SpecsOverviewFile    = "spec-values-overview.md"
	ConfigSchemaFile     = "config-schema.json"
)

// Document is one immutable piece of content.
type Document struct {
	Category Category
	Key      string
	Text     string
}

// ID returns the stable identifier "<category>/<key>".
func (d Document) ID() string {
	return string(d.Category) + "/" + d.Key
}

// Base is the loaded, read-only knowledge base.
type Base struct {
	controls         map[catalog.ControlKind]string
	specs            map[catalog.SpecKind]string
	controlsOverview string
	specsOverview    string
	schemaText       string
	fingerprint      string
}

// Load reads the documentation tree from fsys.
//
// The overviews and the configuration schema must be present and the schema
// must be valid JSON. Per-kind documents are optional at load time.
func Load(fsys fs.FS) (*Base, error) {
	return load(func(name string) ([]byte, error) {
		return fs.ReadFile(fsys, name)
	})
}

// FromMap builds a Base from path → content pairs laid out like the
// documentation tree (e.g. "controls/select.md").
func FromMap(files map[string]string) (*Base, error) {
	return load(func(name string) ([]byte, error) {
		content, ok := files[name]
		if !ok {
			return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
		}
		return []byte(content), nil
	})
}

func load(read func(name string) ([]byte, error)) (*Base, error) {
	b := &Base{
		controls: make(map[catalog.ControlKind]string),
		specs:    make(map[catalog.SpecKind]string),
	}

	for _, kind := range catalog.ControlKinds() {
		data, err := read(path.Join(ControlsDir, string(kind)+".md"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read control %s: %w", kind, err)
		}
		b.controls[kind] = string(data)
	}

	for _, kind := range catalog.SpecKinds() {
		data, err := read(path.Join(SpecValuesDir, string(kind)+".md"))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read spec %s: %w", kind, err)
		}
		b.specs[kind] = string(data)
	}

	required := []struct {
		name string
		dst  *string
	}{
		{ControlsOverviewFile, &b.controlsOverview},
		{SpecsOverviewFile, &b.specsOverview},
		{ConfigSchemaFile, &b.schemaText},
	}
	for _, r := range required {
		data, err := read(r.name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", r.name, err)
		}
		*r.dst = string(data)
	}

	var probe map[string]any
	if err := json.Unmarshal([]byte(b.schemaText), &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}

	b.fingerprint = computeFingerprint(b.Documents())
	return b, nil
}

// ControlDoc returns the documentation for a control.
func (b *Base) ControlDoc(kind catalog.ControlKind) (string, error) {
	text, ok := b.controls[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s %s", ErrNotFound, CategoryControl, kind)
	}
	return text, nil
}

// SpecDoc returns the documentation for a spec value type.
func (b *Base) SpecDoc(kind catalog.SpecKind) (string, error) {
	text, ok := b.specs[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s %s", ErrNotFound, CategorySpecValue, kind)
	}
	return text, nil
}

// ControlsOverview returns the overview table of controls.
func (b *Base) ControlsOverview() string { return b.controlsOverview }

// SpecsOverview returns the overview table of spec value types.
func (b *Base) SpecsOverview() string { return b.specsOverview }

// ConfigSchemaText returns the configuration schema verbatim.
func (b *Base) ConfigSchemaText() string { return b.schemaText }

// ConfigSchema returns a freshly decoded copy of the configuration schema.
func (b *Base) ConfigSchema() any {
	var v any
	// The text was checked at load time.
	_ = json.Unmarshal([]byte(b.schemaText), &v)
	return v
}

// Documents returns every loaded document in a deterministic order:
// controls, spec values, overviews, schema.
func (b *Base) Documents() []Document {
	docs := make([]Document, 0, len(b.controls)+len(b.specs)+3)
	for _, kind := range catalog.ControlKinds() {
		if text, ok := b.controls[kind]; ok {
			docs = append(docs, Document{Category: CategoryControl, Key: string(kind), Text: text})
		}
	}
	for _, kind := range catalog.SpecKinds() {
		if text, ok := b.specs[kind]; ok {
			docs = append(docs, Document{Category: CategorySpecValue, Key: string(kind), Text: text})
		}
	}
	docs = append(docs,
		Document{Category: CategoryControlsOverview, Key: "controls", Text: b.controlsOverview},
		Document{Category: CategorySpecsOverview, Key: "spec-values", Text: b.specsOverview},
		Document{Category: CategorySchema, Key: "config", Text: b.schemaText},
	)
	return docs
}

// Fingerprint returns a stable hash of the loaded content.
func (b *Base) Fingerprint() string { return b.fingerprint }

// computeFingerprint hashes the documents so that any content change yields
// a different value.
func computeFingerprint(docs []Document) string {
	h := sha256.New()
	for _, doc := range docs {
		h.Write([]byte(doc.Category))
		h.Write([]byte{0})
		h.Write([]byte(doc.Key))
		h.Write([]byte{0})
		h.Write([]byte(doc.Text))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
