package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore writes images to a local directory. The API serves the directory
// as static files under /uploads, so URLs stay valid as long as the server
// and its volume live together.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage/disk: mkdir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Upload writes the file under dir, flattening the key to its base name so a
// crafted key cannot escape the upload directory.
func (s *DiskStore) Upload(_ context.Context, key, _ string, content io.Reader) (string, error) {
	name := filepath.Base(key)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("storage/disk: create %s: %w", dst, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("storage/disk: write %s: %w", dst, err)
	}

	return s.baseURL + "/uploads/" + name, nil
}
