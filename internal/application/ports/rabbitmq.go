package ports

import (
	"context"

	"resume-evaluator-api/internal/infrastructure/mq"
)

type (
	EventPublisher interface {
		Publish(e mq.Event)
	}

	RabbitMQ interface {
		EventPublisher
		Connect(ctx context.Context, dsn string) error
		Init() error
		PublisherWorker(ctx context.Context)
		Close() error
	}
)
