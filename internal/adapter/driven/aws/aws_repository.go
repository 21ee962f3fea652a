package aws

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/savings-post-go/internal/domain/repository"
)

// s3API é o subconjunto do cliente S3 usado para publicação.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// stsAPI é o subconjunto do cliente STS usado para identificar a conta.
type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// AWSRepositoryImpl implementa o PublishRepository com cache de configuração por perfil/região.
type AWSRepositoryImpl struct {
	cfgCache map[string]aws.Config
	mu       sync.Mutex

	newS3  func(cfg aws.Config) s3API
	newSTS func(cfg aws.Config) stsAPI
}

// NewAWSRepository cria uma nova implementação do PublishRepository.
func NewAWSRepository() repository.PublishRepository {
	return &AWSRepositoryImpl{
		cfgCache: make(map[string]aws.Config),
		newS3:    func(cfg aws.Config) s3API { return s3.NewFromConfig(cfg) },
		newSTS:   func(cfg aws.Config) stsAPI { return sts.NewFromConfig(cfg) },
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile, region string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cacheKey := fmt.Sprintf("%s-%s", profile, region)
	if cfg, ok := r.cfgCache[cacheKey]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
	}

	r.cfgCache[cacheKey] = cfg
	return cfg, nil
}

// GetAccountID returns the account behind the configured credentials.
func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile, region string) (string, error) {
	cfg, err := r.getAWSConfig(ctx, profile, region)
	if err != nil {
		return "", err
	}

	result, err := r.newSTS(cfg).GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %q: %w", profile, err)
	}
	return aws.ToString(result.Account), nil
}

// PublishFiles uploads each file to s3://bucket/prefix/<basename> and returns the object keys.
// Uploads stop at the first failure; objects already written are kept.
func (r *AWSRepositoryImpl) PublishFiles(ctx context.Context, profile, region, bucket, prefix string, paths []string) ([]string, error) {
	cfg, err := r.getAWSConfig(ctx, profile, region)
	if err != nil {
		return nil, err
	}
	client := r.newS3(cfg)

	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		key := objectKey(prefix, p)
		if err := putFile(ctx, client, bucket, key, p); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func putFile(ctx context.Context, client s3API, bucket, key, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("error opening %s for upload: %w", filePath, err)
	}
	defer file.Close()

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if contentType := mime.TypeByExtension(filepath.Ext(filePath)); contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("error uploading s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

func objectKey(prefix, filePath string) string {
	return path.Join(prefix, filepath.Base(filePath))
}
