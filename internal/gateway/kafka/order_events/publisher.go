package order_events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/IBM/sarama"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

// Publisher отправляет события заказов в Kafka уже после коммита транзакции,
// поэтому ошибка отправки только логируется и не откатывает операцию.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	log      publisherLogger
	now      func() time.Time
}

func New(log publisherLogger, producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (p *Publisher) PublishOrderCreated(ctx context.Context, order *entities.Order) {
	if order == nil {
		return
	}

	p.send(ctx, []orderEvent{{
		Event:      EventOrderCreated,
		OrderID:    order.ID,
		Status:     order.Status.String(),
		OccurredAt: p.now(),
	}})
}

func (p *Publisher) PublishOrdersDeleted(ctx context.Context, ids []int64) {
	if len(ids) == 0 {
		return
	}

	occurredAt := p.now()
	events := make([]orderEvent, 0, len(ids))
	for _, id := range ids {
		events = append(events, orderEvent{
			Event:      EventOrderDeleted,
			OrderID:    id,
			OccurredAt: occurredAt,
		})
	}
	p.send(ctx, events)
}

func (p *Publisher) send(ctx context.Context, events []orderEvent) {
	if ctx.Err() != nil {
		p.log.Error("order events dropped, context done",
			logger.NewField("error", ctx.Err()),
			logger.NewField("events", len(events)),
		)
		return
	}

	messages := make([]*sarama.ProducerMessage, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			p.log.Error("order event encode failed",
				logger.NewField("order", event.OrderID),
				logger.NewField("error", err),
			)
			continue
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: p.topic,
			Key:   sarama.StringEncoder(strconv.FormatInt(event.OrderID, 10)),
			Value: sarama.ByteEncoder(payload),
		})
	}
	if len(messages) == 0 {
		return
	}

	var err error
	if len(messages) == 1 {
		_, _, err = p.producer.SendMessage(messages[0])
	} else {
		err = p.producer.SendMessages(messages)
	}
	if err != nil {
		p.log.Error("order events publish failed",
			logger.NewField("topic", p.topic),
			logger.NewField("events", len(messages)),
			logger.NewField("error", err),
		)
		return
	}

	p.log.Info("order events published",
		logger.NewField("topic", p.topic),
		logger.NewField("event", events[0].Event),
		logger.NewField("events", len(messages)),
	)
}
