// Package search provides full-text search over the formdocs knowledge base.
//
// The primary type is [Searcher], which builds an in-memory Bleve index over
// [knowledge.Base.Documents]:
//
//	s := search.NewSearcher(search.Config{})
//	defer s.Close()
//	hits, err := s.Search(kb, "multiline text", 5)
//
// # Configuration
//
// [Config] allows customization of the key boost and of the indexed text:
//
//	cfg := search.Config{
//	    KeyBoost:      3,    // Boost matches on the document key (default: 3)
//	    MaxDocTextLen: 5000, // Truncate long documents (0 = unlimited)
//	}
//
// # Thread Safety
//
// Searcher is safe for concurrent use. The Bleve index is cached by the
// knowledge base fingerprint and only rebuilt when the content changes.
//
// # Behavior
//
// Empty queries return the first N documents in knowledge base order.
// Non-empty queries are ranked by score, ties broken by document ID.
package search
