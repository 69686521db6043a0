package worker

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/metrics"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/store/fuseki"
)

// StoreMonitor periodically probes the knowledge store and exposes its
// availability as a metric. The recommendation pipeline degrades rather than
// fails when the store is down, so the probe is the main operational signal.
type StoreMonitor struct {
	client   *fuseki.Client
	schedule string
	logger   *logger.Logger

	cron *cron.Cron

	mu        sync.Mutex
	available bool
	probed    bool
}

// NewStoreMonitor creates a monitor probing on the given cron schedule
func NewStoreMonitor(client *fuseki.Client, schedule string, log *logger.Logger) *StoreMonitor {
	return &StoreMonitor{
		client:   client,
		schedule: schedule,
		logger:   log,
	}
}

// Start begins probing. The first probe runs immediately; later probes follow
// the configured schedule until Stop is called.
func (m *StoreMonitor) Start(ctx context.Context) error {
	m.logger.WithFields(map[string]interface{}{
		"schedule": m.schedule,
	}).Info("Starting knowledge store monitor")

	m.probe(ctx)

	c := cron.New()
	_, err := c.AddFunc(m.schedule, func() {
		m.probe(ctx)
	})
	if err != nil {
		return err
	}

	m.cron = c
	c.Start()
	return nil
}

// Stop halts the probe schedule and waits for a running probe to finish
func (m *StoreMonitor) Stop() {
	if m.cron == nil {
		return
	}
	<-m.cron.Stop().Done()
	m.logger.Info("Knowledge store monitor stopped")
}

// Available reports the result of the most recent probe
func (m *StoreMonitor) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available
}

// probe pings the store and records the result, logging only transitions
func (m *StoreMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := m.client.Ping(probeCtx)
	up := err == nil
	metrics.SetStoreAvailable(up)

	m.mu.Lock()
	changed := !m.probed || m.available != up
	m.available = up
	m.probed = true
	m.mu.Unlock()

	if !changed {
		return
	}
	if up {
		m.logger.Info("Knowledge store is reachable")
	} else {
		m.logger.ErrorWithErr(err, "Knowledge store is unreachable")
	}
}
