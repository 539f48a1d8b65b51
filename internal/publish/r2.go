package publish

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jiyul/junior-insight/internal/config"
	"github.com/jiyul/junior-insight/internal/logger"
)

// R2Publisher uploads the pre-generated feed document to Cloudflare R2
// through its S3-compatible API, where the app server picks it up.
type R2Publisher struct {
	client *s3.Client
	bucket string
}

// NewR2Publisher builds a publisher from the R2 settings, or returns nil
// when publishing is not configured.
func NewR2Publisher(ctx context.Context, cfg *config.Config) (*R2Publisher, error) {
	if cfg.R2Endpoint == "" || cfg.R2AccessKey == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.R2AccessKey, cfg.R2SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load R2 credentials: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2Endpoint)
	})

	return &R2Publisher{client: client, bucket: cfg.R2Bucket}, nil
}

// Publish uploads the document under the given object key.
func (p *R2Publisher) Publish(ctx context.Context, key string, body []byte) error {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Get().Info().Str("bucket", p.bucket).Str("key", key).Int("bytes", len(body)).Msg("Published feed document")
	return nil
}
