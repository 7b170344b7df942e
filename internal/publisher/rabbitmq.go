package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ad_tracker/internal/domain"
)

// RabbitMQ publishes ad lifecycle events for the rest of the product
// (dashboards, notifications) to consume.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"direct",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// AdEventMessage is the wire shape of one lifecycle event. The raw remote
// payload is deliberately not included; consumers read it from the store.
type AdEventMessage struct {
	Event         string             `json:"event"` // discovered | status_changed | media_ready
	AdID          int64              `json:"ad_id"`
	LibraryID     string             `json:"library_id"`
	BrandID       int64              `json:"brand_id"`
	Active        bool               `json:"active"`
	MediaStatus   domain.MediaStatus `json:"media_status"`
	LocalImageURL *string            `json:"local_image_url,omitempty"`
	LocalVideoURL *string            `json:"local_video_url,omitempty"`
	Timestamp     time.Time          `json:"timestamp"`
}

func (r *RabbitMQ) PublishAdEvent(ctx context.Context, event string, ad *domain.Ad) error {
	msg := AdEventMessage{
		Event:         event,
		AdID:          ad.ID,
		LibraryID:     ad.LibraryID,
		BrandID:       ad.BrandID,
		Active:        ad.RawContent.ActiveOrDefault(),
		MediaStatus:   ad.MediaStatus,
		LocalImageURL: ad.LocalImageURL,
		LocalVideoURL: ad.LocalVideoURL,
		Timestamp:     time.Now().UTC(),
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	r.logger.Debug("published ad event",
		"event", event,
		"library_id", ad.LibraryID,
	)

	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
