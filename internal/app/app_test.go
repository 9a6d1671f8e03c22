package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blogicum/config"
	"github.com/daniilsolovey/blogicum/internal/media"
)

func TestNewStorage_Local(t *testing.T) {
	var cfg config.Config
	cfg.Media.Storage = config.StorageLocal
	cfg.Media.Dir = t.TempDir()

	storage, dir, err := newStorage(context.Background(), &cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Media.Dir, dir)
	assert.IsType(t, &media.Local{}, storage)
}

func TestNewStorage_S3(t *testing.T) {
	var cfg config.Config
	cfg.Media.Storage = config.StorageS3
	cfg.S3 = media.S3Config{Bucket: "blogicum", Region: "eu-central-1", AccessKeyID: "key", SecretAccessKey: "secret"}

	storage, dir, err := newStorage(context.Background(), &cfg)
	require.NoError(t, err)
	assert.Empty(t, dir, "s3 images are not served locally")
	assert.IsType(t, &media.S3{}, storage)
}
