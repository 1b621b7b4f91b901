package backup

import (
	"context"
	"fmt"
	"os"
	"path"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/2getpro/installer/pkg/log"
)

// s3API is the slice of the S3 client the uploader uses.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader copies snapshots to an S3 bucket for offsite retention.
type Uploader struct {
	client s3API
	bucket string
	prefix string
	logger log.Logger
}

// NewUploader builds an uploader using the ambient AWS configuration
// (environment, shared config, instance role).
func NewUploader(ctx context.Context, bucket, region, prefix string, logger log.Logger) (*Uploader, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	return &Uploader{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
		logger: logger.WithComponent("s3"),
	}, nil
}

// Upload sends one snapshot to the bucket under prefix/<file>.
func (u *Uploader) Upload(ctx context.Context, m *Manager, meta Meta) error {
	f, err := os.Open(m.Path(meta))
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	key := path.Join(u.prefix, meta.File)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &u.bucket,
		Key:    &key,
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("uploading %s: %w", key, err)
	}

	u.logger.Info("snapshot uploaded", log.Str("bucket", u.bucket), log.Str("key", key))
	return nil
}
