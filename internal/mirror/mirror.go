package mirror

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"

	"github.com/nguyentantai21042004/transcript-relay/internal/logger"
)

type s3Mirror struct {
	client *minio.Client
	bucket string
	prefix string
	logger logger.Logger
}

func (m *s3Mirror) Enabled() bool { return true }

func (m *s3Mirror) Upload(ctx context.Context, kind, localPath string) error {
	key := objectKey(m.prefix, kind, localPath)

	info, err := m.client.FPutObject(ctx, m.bucket, key, localPath, minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	m.logger.Debug(ctx, "Mirrored %s to s3://%s/%s (%d bytes)", localPath, m.bucket, key, info.Size)
	return nil
}

func objectKey(prefix, kind, localPath string) string {
	prefix = strings.Trim(prefix, "/")
	return path.Join(prefix, kind, filepath.Base(localPath))
}

type nopMirror struct{}

// NewNop returns a Mirror that uploads nothing.
func NewNop() Mirror { return nopMirror{} }

func (nopMirror) Enabled() bool { return false }

func (nopMirror) Upload(context.Context, string, string) error { return nil }
