package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kvrsharma/shivaratri-event-forms/internal/config"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/domain"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/json_types"
	"github.com/kvrsharma/shivaratri-event-forms/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

// AvailabilityListener слушает очередь бэкенда регистраций с остатками
// мест по слотам и обновляет локальный кэш. Подсказки вместимости не
// участвуют в валидации, поэтому потеря сообщения некритична.
type AvailabilityListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	cache   out.CachePort
	cfg     *config.Config
	logger  out.LoggerPort
}

type AvailabilityHitType string

const (
	AvailabilityHitTypeStore      AvailabilityHitType = "store"
	AvailabilityHitTypeInvalidate AvailabilityHitType = "invalidate"
)

type availabilityMessage struct {
	Date      string         `json:"date"`
	Remaining map[string]int `json:"remaining"`
}

func NewAvailabilityListener(cache out.CachePort, cfg *config.Config, logger out.LoggerPort) (*AvailabilityListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &AvailabilityListener{
		conn:    conn,
		channel: channel,
		cache:   cache,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *AvailabilityListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("availability.message.failed", out.LogFields{
						"error": err.Error(),
					})
					msg.Nack(false, false) // без повтора, придет следующий снимок
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	l.logger.Info("availability.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	return nil
}

// Stop закрывает канал, затем соединение. Безопасен для слушателя,
// который так и не подключился.
func (l *AvailabilityListener) Stop() error {
	if l.channel != nil {
		if err := l.channel.Close(); err != nil {
			return err
		}
	}
	if l.conn != nil {
		return l.conn.Close()
	}
	return nil
}

// Пример routingKey:
// registry.event-forms-svc.availability.store
// registry.event-forms-svc.availability.invalidate
func (l *AvailabilityListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	hitType, err := parseAvailabilityRoutingKey(msg.RoutingKey)
	if err != nil {
		return err
	}

	var message availabilityMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		return err
	}
	if message.Date == "" {
		return fmt.Errorf("availability message without date")
	}

	switch hitType {
	case AvailabilityHitTypeInvalidate:
		l.cache.InvalidateAvailability(ctx, message.Date)
		l.logger.Debug("availability.message.invalidated", out.LogFields{
			"date": message.Date,
		})
	case AvailabilityHitTypeStore:
		// Ключи с нечитаемым диапазоном слота отбрасываются поштучно
		remaining := make(map[string]int, len(message.Remaining))
		for slotID, count := range message.Remaining {
			if _, err := json_types.ParseSlotRange(slotID); err != nil {
				l.logger.Warn("availability.message.bad_slot", out.LogFields{
					"date":   message.Date,
					"slotId": slotID,
				})
				continue
			}
			remaining[slotID] = count
		}

		l.cache.StoreAvailability(ctx, domain.SlotAvailability{
			Date:      message.Date,
			Remaining: remaining,
		})
		l.logger.Debug("availability.message.stored", out.LogFields{
			"date":  message.Date,
			"slots": len(remaining),
		})
	}

	return nil
}

func parseAvailabilityRoutingKey(routingKey string) (AvailabilityHitType, error) {
	parts := strings.Split(routingKey, ".")
	if len(parts) < 4 {
		return "", fmt.Errorf("invalid routing key: %s", routingKey)
	}
	if parts[2] != "availability" {
		return "", fmt.Errorf("unexpected resource type in routing key: %s", routingKey)
	}
	return AvailabilityHitType(parts[3]), nil
}
