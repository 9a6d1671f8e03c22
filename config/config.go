package config

import (
	"fmt"

	"github.com/go-pg/pg/v10"

	"github.com/daniilsolovey/blogicum/internal/media"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"

	DenyRedirect = "redirect"
	DenyForbid   = "forbid"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host         string
		Port         int
		PageSize     int
		SecretKey    string
		DenyPolicy   string
		SecureCookie bool
	}
	Media struct {
		Storage string
		Dir     string
	}
	S3 media.S3Config
}

// Validate fills defaults and checks values that have none.
func (c *Config) Validate() error {
	if c.App.Port == 0 {
		c.App.Port = 8080
	}

	if c.App.PageSize <= 0 {
		c.App.PageSize = 10
	}

	switch c.App.DenyPolicy {
	case "":
		c.App.DenyPolicy = DenyRedirect
	case DenyRedirect, DenyForbid:
	default:
		return fmt.Errorf("unknown deny policy %q", c.App.DenyPolicy)
	}

	if c.App.SecretKey == "" {
		return fmt.Errorf("app secret key is empty")
	}

	switch c.Media.Storage {
	case "", StorageLocal:
		c.Media.Storage = StorageLocal
		if c.Media.Dir == "" {
			c.Media.Dir = "media"
		}
	case StorageS3:
		if c.S3.Bucket == "" || c.S3.Region == "" {
			return fmt.Errorf("s3 bucket and region are required")
		}
	default:
		return fmt.Errorf("unknown media storage %q", c.Media.Storage)
	}

	return nil
}
