package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
	"github.com/guniorg/mannabean-delivery-v3/internal/service"
)

// KafkaPublisher emits order events after the write path has committed.
// Messages are keyed by order id so per-order events stay in order.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)
