package repository

import "context"

// PublishRepository uploads generated artifacts to object storage.
type PublishRepository interface {
	GetAccountID(ctx context.Context, profile, region string) (string, error)
	PublishFiles(ctx context.Context, profile, region, bucket, prefix string, paths []string) ([]string, error)
}
