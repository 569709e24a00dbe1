package search

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"

	"github.com/jonwraymond/formdocs/knowledge"
)

// ErrClosed is returned by Search after Close.
var ErrClosed = errors.New("searcher closed")

const (
	defaultKeyBoost = 3.0
	snippetLen      = 160
)

// Config tunes ranking and indexing.
type Config struct {
	// KeyBoost weights matches on the document key. Default: 3.
	KeyBoost float64
	// MaxDocTextLen truncates indexed text. 0 means unlimited.
	MaxDocTextLen int
}

// Hit is a single search result.
type Hit struct {
	ID       string             `json:"id"`
	Category knowledge.Category `json:"category"`
	Key      string             `json:"key"`
	Score    float64            `json:"score"`
	Snippet  string             `json:"snippet"`
}

// Searcher answers queries against a knowledge base.
type Searcher struct {
	cfg Config

	mu          sync.RWMutex
	index       bleve.Index
	fingerprint string
	docs        map[string]knowledge.Document
	order       []knowledge.Document
	closed      bool
}

// NewSearcher creates a Searcher with cfg, applying defaults for zero values.
func NewSearcher(cfg Config) *Searcher {
	if cfg.KeyBoost <= 0 {
		cfg.KeyBoost = defaultKeyBoost
	}
	return &Searcher{cfg: cfg}
}

// Search returns up to limit documents of kb matching query.
func (s *Searcher) Search(kb *knowledge.Base, query string, limit int) ([]Hit, error) {
	if limit <= 0 {
		return []Hit{}, nil
	}
	if err := s.ensureIndex(kb); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}

	query = strings.TrimSpace(query)
	if query == "" {
		n := min(limit, len(s.order))
		hits := make([]Hit, 0, n)
		for _, doc := range s.order[:n] {
			hits = append(hits, toHit(doc, 0))
		}
		return hits, nil
	}

	textQuery := bleve.NewMatchQuery(query)
	textQuery.SetField("text")
	keyQuery := bleve.NewMatchQuery(query)
	keyQuery.SetField("key")
	keyQuery.SetBoost(s.cfg.KeyBoost)

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(textQuery, keyQuery), limit, 0, false)
	req.SortBy([]string{"-_score", "_id"})

	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, match := range res.Hits {
		doc, ok := s.docs[match.ID]
		if !ok {
			continue
		}
		hits = append(hits, toHit(doc, match.Score))
	}
	return hits, nil
}

// ensureIndex rebuilds the Bleve index when kb differs from the indexed one.
func (s *Searcher) ensureIndex(kb *knowledge.Base) error {
	fp := kb.Fingerprint()

	s.mu.RLock()
	current := s.index != nil && s.fingerprint == fp
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return ErrClosed
	}
	if current {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.index != nil && s.fingerprint == fp {
		return nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}

	docs := kb.Documents()
	byID := make(map[string]knowledge.Document, len(docs))
	batch := idx.NewBatch()
	for _, doc := range docs {
		id := doc.ID()
		byID[id] = doc
		if err := batch.Index(id, map[string]any{
			"category": string(doc.Category),
			"key":      doc.Key,
			"text":     s.truncate(doc.Text),
		}); err != nil {
			_ = idx.Close()
			return fmt.Errorf("index %s: %w", id, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return fmt.Errorf("index batch: %w", err)
	}

	if s.index != nil {
		_ = s.index.Close()
	}
	s.index = idx
	s.fingerprint = fp
	s.docs = byID
	s.order = docs
	return nil
}

func (s *Searcher) truncate(text string) string {
	if s.cfg.MaxDocTextLen <= 0 || len(text) <= s.cfg.MaxDocTextLen {
		return text
	}
	cut := s.cfg.MaxDocTextLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// Close releases the index. Further searches return ErrClosed.
func (s *Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	return err
}

func toHit(doc knowledge.Document, score float64) Hit {
	return Hit{
		ID:       doc.ID(),
		Category: doc.Category,
		Key:      doc.Key,
		Score:    score,
		Snippet:  snippet(doc.Text),
	}
}

// snippet returns the first prose line of a markdown document.
func snippet(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "```") {
			continue
		}
		if utf8.RuneCountInString(line) > snippetLen {
			runes := []rune(line)
			line = string(runes[:snippetLen]) + "…"
		}
		return line
	}
	return ""
}
