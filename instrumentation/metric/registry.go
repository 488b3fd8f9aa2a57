// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package metric

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-linkboard-go/synchronization"
	"github.com/orbs-network/scribe/log"
	"sort"
	"sync"
	"time"
)

type Factory interface {
	NewLatency(name string, maxDuration time.Duration) *Histogram
	NewHistogram(name string, maxValue int64) *Histogram
	NewGauge(name string) *Gauge
	NewRate(name string) *Rate
	NewText(name string, defaultValue ...string) *Text
}

type Registry interface {
	Factory
	String() string
	ExportAll() map[string]ExportedMetric
	ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger
}

type ExportedMetric interface {
	LogRow() []*log.Field
}

type metric interface {
	fmt.Stringer
	Name() string
	Export() ExportedMetric
}

type namedMetric struct {
	name string
}

func (m *namedMetric) Name() string {
	return m.name
}

func NewRegistry() Registry {
	return &inMemoryRegistry{}
}

type inMemoryRegistry struct {
	mu struct {
		sync.Mutex
		metrics map[string]metric
	}
}

// register returns the metric already registered under the same name, so services sharing a registry share the metric.
func (r *inMemoryRegistry) register(m metric) metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.mu.metrics == nil {
		r.mu.metrics = make(map[string]metric)
	}
	if existing, ok := r.mu.metrics[m.Name()]; ok {
		return existing
	}
	r.mu.metrics[m.Name()] = m
	return m
}

func (r *inMemoryRegistry) NewRate(name string) *Rate {
	return r.register(newRate(name)).(*Rate)
}

func (r *inMemoryRegistry) NewGauge(name string) *Gauge {
	return r.register(&Gauge{namedMetric: namedMetric{name: name}}).(*Gauge)
}

func (r *inMemoryRegistry) NewLatency(name string, maxDuration time.Duration) *Histogram {
	return r.NewHistogram(name, maxDuration.Nanoseconds())
}

func (r *inMemoryRegistry) NewHistogram(name string, maxValue int64) *Histogram {
	return r.register(newHistogram(name, maxValue)).(*Histogram)
}

func (r *inMemoryRegistry) NewText(name string, defaultValue ...string) *Text {
	return r.register(newText(name, defaultValue...)).(*Text)
}

func (r *inMemoryRegistry) sortedMetrics() []metric {
	r.mu.Lock()
	defer r.mu.Unlock()

	metrics := make([]metric, 0, len(r.mu.metrics))
	for _, m := range r.mu.metrics {
		metrics = append(metrics, m)
	}
	sort.Slice(metrics, func(i, j int) bool {
		return metrics[i].Name() < metrics[j].Name()
	})
	return metrics
}

func (r *inMemoryRegistry) String() string {
	var s string
	for _, m := range r.sortedMetrics() {
		s += m.String()
	}
	return s
}

func (r *inMemoryRegistry) ExportAll() map[string]ExportedMetric {
	all := make(map[string]ExportedMetric)
	for _, m := range r.sortedMetrics() {
		all[m.Name()] = m.Export()
	}
	return all
}

func (r *inMemoryRegistry) report(logger log.Logger) {
	for _, m := range r.sortedMetrics() {
		if logRow := m.Export().LogRow(); logRow != nil {
			logger.Metric(logRow...)
		}
	}
}

func (r *inMemoryRegistry) rotateHistograms() {
	for _, m := range r.sortedMetrics() {
		if h, ok := m.(*Histogram); ok {
			h.Rotate()
		}
	}
}

func (r *inMemoryRegistry) ReportEvery(ctx context.Context, interval time.Duration, logger log.Logger) *synchronization.PeriodicalTrigger {
	return synchronization.NewPeriodicalTrigger(ctx, "metric-reporter", interval, logger, func() {
		r.report(logger)
		r.rotateHistograms()
	}, func() {
		r.report(logger)
	})
}
