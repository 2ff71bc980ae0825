package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rebrain/internal/models"
)

// collectTimeout bounds the stats query run on each scrape.
const collectTimeout = 5 * time.Second

var (
	usersDesc = prometheus.NewDesc(
		"rebrain_users",
		"Number of registered users",
		nil,
		nil,
	)
	contentDesc = prometheus.NewDesc(
		"rebrain_content",
		"Number of saved content items by type",
		[]string{"type"},
		nil,
	)
	shareLinksDesc = prometheus.NewDesc(
		"rebrain_share_links_active",
		"Number of enabled share links",
		nil,
		nil,
	)
	shareViewsDesc = prometheus.NewDesc(
		"rebrain_share_views",
		"Views across share links that currently exist",
		nil,
		nil,
	)
)

// Source is the store the collector and recorder read from and write to.
type Source interface {
	GetBrainStats(ctx context.Context) (*models.BrainStats, error)
	IncrementShareViews(ctx context.Context, hash string) error
}

// BrainCollector is a custom Prometheus collector that reads brain statistics
// from the database on each scrape.
type BrainCollector struct {
	src Source
}

// NewBrainCollector creates a collector backed by src.
func NewBrainCollector(src Source) *BrainCollector {
	return &BrainCollector{src: src}
}

// Describe sends the metric descriptors to the channel.
func (c *BrainCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- usersDesc
	ch <- contentDesc
	ch <- shareLinksDesc
	ch <- shareViewsDesc
}

// Collect queries the database and emits the current statistics.
func (c *BrainCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
	defer cancel()

	stats, err := c.src.GetBrainStats(ctx)
	if err != nil {
		slog.Error("failed to collect brain metrics", "error", err)
		return
	}

	ch <- prometheus.MustNewConstMetric(usersDesc, prometheus.GaugeValue, float64(stats.Users))
	// Every type is emitted so dashboards see zeroes instead of gaps.
	for _, t := range models.ContentTypes {
		ch <- prometheus.MustNewConstMetric(contentDesc, prometheus.GaugeValue, float64(stats.ContentByType[t]), string(t))
	}
	ch <- prometheus.MustNewConstMetric(shareLinksDesc, prometheus.GaugeValue, float64(stats.ActiveShareLinks))
	ch <- prometheus.MustNewConstMetric(shareViewsDesc, prometheus.GaugeValue, float64(stats.ShareViews))
}

// Recorder provides async share view recording.
type Recorder struct {
	src Source
	wg  sync.WaitGroup
}

// NewRecorder creates a recorder that writes to src.
func NewRecorder(src Source) *Recorder {
	return &Recorder{src: src}
}

// RecordShareView increments the view counter of hash in the background.
func (r *Recorder) RecordShareView(hash string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), collectTimeout)
		defer cancel()
		if err := r.src.IncrementShareViews(ctx, hash); err != nil {
			slog.Error("failed to record share view", "hash", hash, "error", err)
		}
	}()
}

// Wait blocks until all pending recordings have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(src Source) {
	recorderOnce.Do(func() {
		recorder = NewRecorder(src)
		prometheus.MustRegister(NewBrainCollector(src))
	})
}

// RecordShareView asynchronously records a view of a share link. It is a
// no-op until Init has been called.
func RecordShareView(hash string) {
	if recorder == nil {
		return
	}
	recorder.RecordShareView(hash)
}

// Flush waits for pending share view recordings. Called during shutdown.
func Flush() {
	if recorder == nil {
		return
	}
	recorder.Wait()
}
