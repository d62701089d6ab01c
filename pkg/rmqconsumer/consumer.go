package rmqconsumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"resume-evaluator-api/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

type (
	// Consumer writes every bound domain event to the audit log.
	Consumer struct {
		cfg         config.MQ
		log         *zap.Logger
		conn        *amqp091.Connection
		chConsume   *amqp091.Channel
		chDelivery  <-chan amqp091.Delivery
		routingKeys []string
	}

	envelope struct {
		ID     string    `json:"event_id"`
		TS     time.Time `json:"time_stamp"`
		Type   string    `json:"event_type"`
		UserID string    `json:"user_id"`
	}
)

func New(cfg config.MQ, logger *zap.Logger, routingKeys []string) *Consumer {
	return &Consumer{
		cfg:         cfg,
		log:         logger,
		routingKeys: routingKeys,
	}
}

func (c *Consumer) Connect(dsn string) error {
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.conn, c.chConsume = conn, ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Close() error {
	if c.conn == nil || c.conn.IsClosed() {
		return nil
	}
	return c.conn.Close()
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, rk := range c.routingKeys {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			rk,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", rk, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	deliveries, err := c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.chDelivery = deliveries

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			if err := c.delivery(msg); err != nil {
				c.log.Error("mq read message error", zap.Error(err), zap.String("routing_key", msg.RoutingKey))
			}
		case <-ctx.Done():
			_ = c.chConsume.Close()
			return
		}
	}
}

func (c *Consumer) delivery(msg amqp091.Delivery) error {
	var e envelope
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode event: %w", err)
	}

	c.log.Info("audit event",
		zap.String("event_type", msg.RoutingKey),
		zap.String("event_id", e.ID),
		zap.String("user_id", e.UserID),
		zap.Time("occurred_at", e.TS),
		zap.Int("size", len(msg.Body)),
	)

	return nil
}
