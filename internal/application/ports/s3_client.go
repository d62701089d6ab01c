package ports

import "context"

type S3Client interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Delete(ctx context.Context, key string) error
	PresignGetURL(ctx context.Context, key string) (string, error)
	GetBucket() string
}
