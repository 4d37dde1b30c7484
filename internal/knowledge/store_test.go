package knowledge

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// vectorEmbedder maps known texts to fixed vectors so ranking is deterministic
type vectorEmbedder struct {
	vectors map[string][]float64
	fallback []float64
	calls   int
	err     error
}

func (e *vectorEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	e.calls++
	if e.err != nil {
		return nil, e.err
	}
	if vector, ok := e.vectors[text]; ok {
		return vector, nil
	}
	return e.fallback, nil
}

type StoreTestSuite struct {
	suite.Suite
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	store, err := NewStore(128)
	s.Require().NoError(err)
	s.store = store
}

func (s *StoreTestSuite) TestSeededCollections() {
	collections := s.store.Collections()
	s.Equal([]string{CollectionFinancialKnowledge, CollectionBudgetingTips, CollectionTaxRules}, collections)

	s.Len(s.store.collections[CollectionFinancialKnowledge], 8)
	s.Len(s.store.collections[CollectionBudgetingTips], 5)
	s.Len(s.store.collections[CollectionTaxRules], 3)
}

func (s *StoreTestSuite) TestSearch_LexicalRanking() {
	snippets, err := s.store.Search(context.Background(), "emergency fund essential expenses", CollectionFinancialKnowledge, 3)

	s.Require().NoError(err)
	s.Require().NotEmpty(snippets)
	s.Contains(snippets[0].Text, "emergency fund")

	for i := 1; i < len(snippets); i++ {
		s.LessOrEqual(snippets[i-1].Distance, snippets[i].Distance, "results must be ordered by distance")
	}
}

func (s *StoreTestSuite) TestSearch_TopKTruncation() {
	snippets, err := s.store.Search(context.Background(), "tax benefits contributions income", CollectionTaxRules, 2)

	s.Require().NoError(err)
	s.LessOrEqual(len(snippets), 2)
}

func (s *StoreTestSuite) TestSearch_ZeroTopK() {
	snippets, err := s.store.Search(context.Background(), "anything", CollectionBudgetingTips, 0)

	s.NoError(err)
	s.Empty(snippets)
}

func (s *StoreTestSuite) TestSearch_NoOverlapReturnsEmpty() {
	snippets, err := s.store.Search(context.Background(), "zzzzz qqqqq xxxxx", CollectionBudgetingTips, 3)

	s.NoError(err)
	s.Empty(snippets)
}

func (s *StoreTestSuite) TestSearch_UnknownCollectionFallsBack() {
	snippets, err := s.store.Search(context.Background(), "emergency fund expenses", "nonexistent", 2)

	s.Require().NoError(err)
	s.Require().NotEmpty(snippets)
	// Served from financial_knowledge
	s.Contains(snippets[0].Text, "emergency fund")
}

func (s *StoreTestSuite) TestSearch_Deterministic() {
	first, err := s.store.Search(context.Background(), "reduce dining out meal planning", CollectionBudgetingTips, 3)
	s.Require().NoError(err)

	second, err := s.store.Search(context.Background(), "reduce dining out meal planning", CollectionBudgetingTips, 3)
	s.Require().NoError(err)

	s.Equal(first, second)
}

func (s *StoreTestSuite) TestSearchAll() {
	results, err := s.store.SearchAll(context.Background(), "income savings", 2)

	s.Require().NoError(err)
	s.Len(results, 3)
	for _, collection := range s.store.Collections() {
		s.Contains(results, collection)
		s.LessOrEqual(len(results[collection]), 2)
	}
}

func (s *StoreTestSuite) TestAddDocument() {
	id, err := s.store.AddDocument(context.Background(), CollectionBudgetingTips, "Batch cook lunches on weekends to cut weekday takeout spending.", map[string]string{"category": "food"})

	s.Require().NoError(err)
	s.Equal("budgeting_tips_6", id)

	snippets, err := s.store.Search(context.Background(), "batch cook lunches weekends takeout", CollectionBudgetingTips, 1)
	s.Require().NoError(err)
	s.Require().Len(snippets, 1)
	s.Contains(snippets[0].Text, "Batch cook")
	s.Equal("food", snippets[0].Metadata["category"])
}

func (s *StoreTestSuite) TestAddDocument_UnknownCollection() {
	_, err := s.store.AddDocument(context.Background(), "nope", "some text", nil)
	s.Error(err)
	s.Contains(err.Error(), "unknown collection")
}

func (s *StoreTestSuite) TestAddDocument_EmptyText() {
	_, err := s.store.AddDocument(context.Background(), CollectionBudgetingTips, "", nil)
	s.Error(err)
}

func (s *StoreTestSuite) TestSearch_WithEmbedder() {
	// Three axis-aligned vectors; the query matches the dollar-cost
	// averaging document exactly
	embedder := &vectorEmbedder{
		vectors: map[string][]float64{
			"investing strategy": {1, 0, 0},
		},
		fallback: []float64{0, 1, 0},
	}
	for _, doc := range seedDocuments()[CollectionFinancialKnowledge] {
		if strings.Contains(doc.Text, "Dollar-cost averaging") {
			embedder.vectors[doc.Text] = []float64{0.9, 0.1, 0}
		}
	}

	store, err := NewStore(128, WithEmbedder(embedder))
	s.Require().NoError(err)

	snippets, err := store.Search(context.Background(), "investing strategy", CollectionFinancialKnowledge, 2)

	s.Require().NoError(err)
	s.Require().NotEmpty(snippets)
	s.Contains(snippets[0].Text, "Dollar-cost averaging")
	s.Positive(embedder.calls)
}

func (s *StoreTestSuite) TestSearch_EmbedderFailureSurfaces() {
	embedder := &vectorEmbedder{err: context.DeadlineExceeded}

	store, err := NewStore(128, WithEmbedder(embedder))
	s.Require().NoError(err)

	_, err = store.Search(context.Background(), "anything at all", CollectionFinancialKnowledge, 2)
	s.Error(err)
}

func TestCosineDistance(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     []float64
		expected float64
	}{
		{"identical", []float64{1, 0}, []float64{1, 0}, 0},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 1},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, 2},
		{"mismatched lengths", []float64{1, 0}, []float64{1}, 1},
		{"zero vector", []float64{0, 0}, []float64{1, 0}, 1},
		{"empty", nil, nil, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := cosineDistance(tc.a, tc.b)
			if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("cosineDistance(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestLexicalDistance(t *testing.T) {
	if d := lexicalDistance("emergency fund", "An emergency fund should cover expenses."); d != 0 {
		t.Errorf("full overlap should give distance 0, got %v", d)
	}
	if d := lexicalDistance("zzz qqq", "An emergency fund should cover expenses."); d != 1 {
		t.Errorf("no overlap should give distance 1, got %v", d)
	}
	if d := lexicalDistance("", "anything"); d != 1 {
		t.Errorf("empty query should give distance 1, got %v", d)
	}
	if d := lexicalDistance("emergency zzz", "emergency savings"); d != 0.5 {
		t.Errorf("half overlap should give distance 0.5, got %v", d)
	}
}
