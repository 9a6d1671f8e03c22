package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Local stores files under a media root served at URLPrefix.
type Local struct {
	root      string
	urlPrefix string
}

func NewLocal(root, urlPrefix string) *Local {
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}

	return &Local{
		root:      root,
		urlPrefix: urlPrefix,
	}
}

func (l *Local) Root() string {
	return l.root
}

func (l *Local) Save(_ context.Context, contentType string, body io.Reader) (string, error) {
	key, err := ObjectKey(contentType)
	if err != nil {
		return "", err
	}

	path := filepath.Join(l.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write media file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close media file: %w", err)
	}

	return l.urlPrefix + key, nil
}

// Delete removes a file saved by Save. URLs of other storages are ignored.
func (l *Local) Delete(_ context.Context, url string) error {
	key, ok := strings.CutPrefix(url, l.urlPrefix)
	if !ok || key == "" || strings.Contains(key, "..") {
		return nil
	}

	err := os.Remove(filepath.Join(l.root, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove media file: %w", err)
	}

	return nil
}
