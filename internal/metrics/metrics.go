package metrics

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"icolleague/internal/models"
)

var (
	assistantLookupDesc = prometheus.NewDesc(
		"icolleague_assistant_lookups_total",
		"Total assistant questions by matched keyword and outcome",
		[]string{"keyword", "outcome"},
		nil,
	)
)

// LookupStore persists assistant lookup counts.
type LookupStore interface {
	IncrementAssistantLookup(ctx context.Context, keyword, outcome string) error
	GetAllAssistantLookups(ctx context.Context) ([]models.AssistantLookup, error)
}

// AssistantCollector is a custom Prometheus collector that reads assistant
// lookup counts from the database on each scrape.
type AssistantCollector struct {
	store LookupStore
	log   *zap.Logger
}

// NewAssistantCollector creates a collector over store.
func NewAssistantCollector(store LookupStore, log *zap.Logger) *AssistantCollector {
	return &AssistantCollector{store: store, log: log}
}

// Describe sends the metric descriptor to the channel.
func (c *AssistantCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- assistantLookupDesc
}

// Collect queries the store for all assistant lookups and emits them as counters.
func (c *AssistantCollector) Collect(ch chan<- prometheus.Metric) {
	lookups, err := c.store.GetAllAssistantLookups(context.Background())
	if err != nil {
		c.log.Error("failed to collect assistant lookup metrics", zap.Error(err))
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			assistantLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Keyword,
			l.Outcome,
		)
	}
}

// Recorder provides async assistant lookup recording.
type Recorder struct {
	store LookupStore
	log   *zap.Logger
	wg    sync.WaitGroup
}

// NewRecorder creates a recorder that writes to store.
func NewRecorder(store LookupStore, log *zap.Logger) *Recorder {
	return &Recorder{store: store, log: log}
}

// Register adds the assistant collector for this recorder's store to reg.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	return reg.Register(NewAssistantCollector(r.store, r.log))
}

// RecordAssistantLookup asynchronously records an assistant lookup outcome.
// A nil recorder is a no-op.
func (r *Recorder) RecordAssistantLookup(keyword, outcome string) {
	if r == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.store.IncrementAssistantLookup(context.Background(), keyword, outcome); err != nil {
			r.log.Error("failed to record assistant lookup",
				zap.String("keyword", keyword),
				zap.String("outcome", outcome),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until all in-flight recordings finish.
func (r *Recorder) Wait() {
	if r == nil {
		return
	}
	r.wg.Wait()
}
