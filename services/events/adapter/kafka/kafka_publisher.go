// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package kafka

import (
	"context"
	"fmt"
	"github.com/orbs-network/orbs-linkboard-go/config"
	"github.com/orbs-network/orbs-linkboard-go/services/events/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(parent log.Logger, cfg config.EventsConfig) (*KafkaPublisher, error) {
	brokers := cfg.EventsKafkaBrokers()
	if len(brokers) == 0 {
		return nil, errors.New("no kafka brokers configured")
	}
	logger := parent.WithTags(log.String("adapter", "kafka"))

	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        cfg.EventsKafkaTopic(),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			BatchTimeout: cfg.EventsKafkaBatchTimeout(),
			ErrorLogger:  kafkaLogger{logger},
		},
	}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, messages []adapter.Message) error {
	if len(messages) == 0 {
		return nil
	}
	kafkaMessages := make([]kafka.Message, len(messages))
	for i, m := range messages {
		kafkaMessages[i] = kafka.Message{Key: m.Key, Value: m.Value}
	}
	if err := p.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		return errors.Wrapf(err, "failed to write %d messages to topic %s", len(messages), p.writer.Topic)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type kafkaLogger struct {
	logger log.Logger
}

func (l kafkaLogger) Printf(format string, args ...interface{}) {
	l.logger.Error("kafka writer error", log.String("message", fmt.Sprintf(format, args...)))
}
