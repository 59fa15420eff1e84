package metrics

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"icolleague/internal/models"
)

type memoryStore struct {
	mu      sync.Mutex
	counts  map[[2]string]int64
	failGet bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{counts: map[[2]string]int64{}}
}

func (s *memoryStore) IncrementAssistantLookup(_ context.Context, keyword, outcome string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[[2]string{keyword, outcome}]++
	return nil
}

func (s *memoryStore) GetAllAssistantLookups(context.Context) ([]models.AssistantLookup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failGet {
		return nil, errors.New("db down")
	}
	var out []models.AssistantLookup
	for k, v := range s.counts {
		out = append(out, models.AssistantLookup{Keyword: k[0], Outcome: k[1], Count: v})
	}
	return out, nil
}

func TestRecorder_RecordsAndExports(t *testing.T) {
	store := newMemoryStore()
	rec := NewRecorder(store, zap.NewNop())

	rec.RecordAssistantLookup("leave", models.OutcomeMatched)
	rec.RecordAssistantLookup("leave", models.OutcomeMatched)
	rec.RecordAssistantLookup("", models.OutcomeFallback)
	rec.Wait()

	reg := prometheus.NewRegistry()
	require.NoError(t, rec.Register(reg))

	expected := `
# HELP icolleague_assistant_lookups_total Total assistant questions by matched keyword and outcome
# TYPE icolleague_assistant_lookups_total counter
icolleague_assistant_lookups_total{keyword="",outcome="fallback"} 1
icolleague_assistant_lookups_total{keyword="leave",outcome="matched"} 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "icolleague_assistant_lookups_total")
	assert.NoError(t, err)
}

func TestAssistantCollector_StoreError(t *testing.T) {
	store := newMemoryStore()
	store.failGet = true

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewAssistantCollector(store, zap.NewNop())))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecorder_NilIsNoop(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.RecordAssistantLookup("leave", models.OutcomeMatched)
		rec.Wait()
	})
}
