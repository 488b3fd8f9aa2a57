// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package events

import (
	"context"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-linkboard-go/instrumentation/metric"
	"github.com/orbs-network/orbs-linkboard-go/services/events/adapter"
	"github.com/orbs-network/orbs-linkboard-go/services/runtime"
	"github.com/orbs-network/scribe/log"
	"time"
)

const maxBatchSize = 100

type metrics struct {
	published   *metric.Gauge
	dropped     *metric.Gauge
	failed      *metric.Gauge
	queueLength *metric.Gauge
	publishTime *metric.Histogram
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		published:   m.NewGauge("Events.Published.Count"),
		dropped:     m.NewGauge("Events.Dropped.Count"),
		failed:      m.NewGauge("Events.PublishFailures.Count"),
		queueLength: m.NewGauge("Events.Queue.Length"),
		publishTime: m.NewLatency("Events.Publish.Time.Millis", 30*time.Second),
	}
}

// Service forwards committed events to a publisher on a supervised goroutine.
// Publish never blocks the caller; when the queue is full events are dropped and counted.
type Service struct {
	govnr.TreeSupervisor
	logger    log.Logger
	publisher adapter.EventPublisher
	queue     chan adapter.Message
	metrics   *metrics
	cancel    context.CancelFunc
	closed    govnr.ContextEndedChan
}

func NewEventsService(ctx context.Context, parent log.Logger, metricFactory metric.Factory, cfg config.EventsConfig, publisher adapter.EventPublisher) *Service {
	subCtx, cancel := context.WithCancel(ctx)
	s := &Service{
		logger:    parent.WithTags(log.Service("events")),
		publisher: publisher,
		queue:     make(chan adapter.Message, cfg.EventsQueueSize()),
		metrics:   newMetrics(metricFactory),
		cancel:    cancel,
	}

	h := govnr.Forever(subCtx, "events publisher", logfields.GovnrErrorer(s.logger), func() {
		s.publishUntilDone(subCtx)
	})
	s.closed = h.Done()
	s.Supervise(h)
	return s
}

func (s *Service) Publish(ctx context.Context, events []*runtime.Event) {
	for _, e := range events {
		message, err := encodeEvent(e)
		if err != nil {
			s.logger.Error("dropping event that cannot be encoded", log.Error(err), logfields.Transaction(e.TxHash))
			s.metrics.dropped.Inc()
			continue
		}

		select {
		case s.queue <- message:
			s.metrics.queueLength.Inc()
		default:
			s.metrics.dropped.Inc()
			s.logger.Info("event queue is full, dropping event", log.String("event", e.Name), logfields.Transaction(e.TxHash))
		}
	}
}

func (s *Service) publishUntilDone(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case first := <-s.queue:
			batch := s.drain(first)
			s.publish(ctx, batch)
		}
	}
}

func (s *Service) drain(first adapter.Message) []adapter.Message {
	batch := []adapter.Message{first}
	for len(batch) < maxBatchSize {
		select {
		case m := <-s.queue:
			batch = append(batch, m)
		default:
			return batch
		}
	}
	return batch
}

func (s *Service) publish(ctx context.Context, batch []adapter.Message) {
	start := time.Now()
	defer s.metrics.publishTime.RecordSince(start)
	s.metrics.queueLength.Add(-int64(len(batch)))

	if err := s.publisher.Publish(ctx, batch); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.metrics.failed.Inc()
		s.logger.Error("failed to publish events", log.Error(err), log.Int("batch-size", len(batch)))
		return
	}
	s.metrics.published.Add(int64(len(batch)))
}

// GracefulShutdown stops the publishing goroutine, then closes the publisher. Queued events are discarded.
func (s *Service) GracefulShutdown(shutdownContext context.Context) {
	s.cancel()
	select {
	case <-s.closed:
	case <-shutdownContext.Done():
	}
	if err := s.publisher.Close(); err != nil {
		s.logger.Error("failed to close event publisher", log.Error(err))
	}
}
