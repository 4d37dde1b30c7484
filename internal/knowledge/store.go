// Package knowledge implements the semantic retrieval side of the RAG
// pipeline: a small in-process corpus of financial guidance, ranked per
// query by embedding distance (or token overlap when no embedder is
// available) and fronted by a ristretto cache.
package knowledge

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/dgraph-io/ristretto"
	"github.com/rs/zerolog/log"
)

// Knowledge collections
const (
	CollectionFinancialKnowledge = "financial_knowledge"
	CollectionBudgetingTips      = "budgeting_tips"
	CollectionTaxRules           = "tax_rules"
)

// Document is a corpus entry
type Document struct {
	ID       string
	Text     string
	Metadata map[string]string

	embedding []float64
}

// Snippet is a retrieval result. Distance is the ranking distance for the
// query that produced it; lower is more relevant.
type Snippet struct {
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata"`
	Distance float64           `json:"distance"`
}

// Store holds the corpus and answers similarity queries. Collections are
// seeded once at construction; AddDocument may extend them afterwards.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Document
	embedder    Embedder
	cache       *ristretto.Cache
}

// Option configures the store
type Option func(*Store)

// WithEmbedder ranks documents by embedding distance instead of the
// lexical fallback
func WithEmbedder(e Embedder) Option {
	return func(s *Store) {
		s.embedder = e
	}
}

// NewStore creates a store seeded with the built-in corpus
func NewStore(cacheMaxItems int64, opts ...Option) (*Store, error) {
	if cacheMaxItems <= 0 {
		cacheMaxItems = 1024
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cacheMaxItems * 10,
		MaxCost:     cacheMaxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create retrieval cache: %w", err)
	}

	store := &Store{
		collections: seedDocuments(),
		cache:       cache,
	}

	for _, opt := range opts {
		opt(store)
	}

	total := 0
	for _, docs := range store.collections {
		total += len(docs)
	}
	log.Info().Int("documents", total).Bool("embedder", store.embedder != nil).
		Msg("knowledge store initialized")

	return store, nil
}

// Collections returns the known collection names
func (s *Store) Collections() []string {
	return []string{CollectionFinancialKnowledge, CollectionBudgetingTips, CollectionTaxRules}
}

// Search returns the topK most relevant snippets from the collection.
// Unknown collections fall back to financial_knowledge, mirroring the
// lenient lookup the API has always had. An empty result is valid.
func (s *Store) Search(ctx context.Context, query, collection string, topK int) ([]Snippet, error) {
	if topK <= 0 {
		return nil, nil
	}

	if cached, ok := s.cacheGet(query, collection, topK); ok {
		return cached, nil
	}

	s.mu.RLock()
	docs, ok := s.collections[collection]
	if !ok {
		docs = s.collections[CollectionFinancialKnowledge]
	}
	docs = append([]Document(nil), docs...)
	s.mu.RUnlock()

	if len(docs) == 0 {
		return nil, nil
	}

	snippets, err := s.rank(ctx, query, docs, topK)
	if err != nil {
		return nil, err
	}

	s.cacheSet(query, collection, topK, snippets)
	return snippets, nil
}

// SearchAll queries every collection and returns the results per collection
func (s *Store) SearchAll(ctx context.Context, query string, perCollection int) (map[string][]Snippet, error) {
	results := make(map[string][]Snippet, 3)
	for _, collection := range s.Collections() {
		snippets, err := s.Search(ctx, query, collection, perCollection)
		if err != nil {
			return nil, err
		}
		results[collection] = snippets
	}
	return results, nil
}

// AddDocument appends a document to a collection and returns its ID
func (s *Store) AddDocument(ctx context.Context, collection, text string, metadata map[string]string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("document text is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection]; !ok {
		return "", fmt.Errorf("unknown collection: %s", collection)
	}

	doc := Document{
		ID:       fmt.Sprintf("%s_%d", collection, len(s.collections[collection])+1),
		Text:     text,
		Metadata: metadata,
	}

	if s.embedder != nil {
		embedding, err := s.embedder.Embed(ctx, text)
		if err != nil {
			return "", fmt.Errorf("embed document: %w", err)
		}
		doc.embedding = embedding
	}

	s.collections[collection] = append(s.collections[collection], doc)

	// Cached rankings may no longer include the new document
	s.cache.Clear()

	log.Info().Str("collection", collection).Str("id", doc.ID).Msg("knowledge document added")
	return doc.ID, nil
}

func (s *Store) rank(ctx context.Context, query string, docs []Document, topK int) ([]Snippet, error) {
	scored := make([]Snippet, 0, len(docs))

	if s.embedder != nil {
		queryEmbedding, err := s.embedder.Embed(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}

		for i := range docs {
			doc := &docs[i]
			if doc.embedding == nil {
				embedding, err := s.embedder.Embed(ctx, doc.Text)
				if err != nil {
					return nil, fmt.Errorf("embed document %s: %w", doc.ID, err)
				}
				doc.embedding = embedding
				s.storeEmbedding(doc.ID, embedding)
			}
			scored = append(scored, Snippet{
				Text:     doc.Text,
				Metadata: doc.Metadata,
				Distance: cosineDistance(queryEmbedding, doc.embedding),
			})
		}
	} else {
		for i := range docs {
			scored = append(scored, Snippet{
				Text:     docs[i].Text,
				Metadata: docs[i].Metadata,
				Distance: lexicalDistance(query, docs[i].Text),
			})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Distance < scored[j].Distance
	})

	if topK < len(scored) {
		scored = scored[:topK]
	}

	// In lexical mode a distance of 1.0 means zero token overlap; drop
	// those instead of returning unrelated text. An empty result is a
	// valid response.
	if s.embedder == nil {
		filtered := scored[:0]
		for _, snip := range scored {
			if snip.Distance < 1.0 {
				filtered = append(filtered, snip)
			}
		}
		scored = filtered
	}

	return scored, nil
}

// storeEmbedding writes a lazily computed embedding back to the corpus
func (s *Store) storeEmbedding(docID string, embedding []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for collection, docs := range s.collections {
		for i := range docs {
			if docs[i].ID == docID {
				s.collections[collection][i].embedding = embedding
				return
			}
		}
	}
}

func cacheKey(query, collection string, topK int) string {
	return fmt.Sprintf("%s|%s|%d", collection, query, topK)
}

func (s *Store) cacheGet(query, collection string, topK int) ([]Snippet, bool) {
	value, ok := s.cache.Get(cacheKey(query, collection, topK))
	if !ok {
		return nil, false
	}
	snippets, ok := value.([]Snippet)
	return snippets, ok
}

func (s *Store) cacheSet(query, collection string, topK int, snippets []Snippet) {
	s.cache.Set(cacheKey(query, collection, topK), snippets, 1)
}
