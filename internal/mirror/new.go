package mirror

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/nguyentantai21042004/transcript-relay/internal/config"
	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
)

// New returns a no-op Mirror when cfg is disabled. Otherwise it connects to
// the S3-compatible endpoint and checks that the bucket exists.
func New(ctx context.Context, cfg config.MirrorConfig, log logger.Logger) (Mirror, error) {
	if !cfg.Enabled {
		return NewNop(), nil
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv(cfg.AccessKeyEnv), os.Getenv(cfg.SecretKeyEnv), ""),
		Secure: cfg.Secure,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %q does not exist", cfg.Bucket)
	}

	log.Info(ctx, "Mirroring outputs to s3://%s/%s", cfg.Bucket, cfg.Prefix)

	return &s3Mirror{
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: log,
	}, nil
}
