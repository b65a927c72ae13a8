package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"community-server/internal/utils"
)

// LocalStore 把文件写入本地目录，由静态文件路由对外提供访问。
type LocalStore struct {
	root      string
	urlPrefix string
}

func NewLocalStore(root, urlPrefix string) *LocalStore {
	return &LocalStore{root: root, urlPrefix: urlPrefix}
}

func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target, err := utils.SecureJoin(s.root, filepath.FromSlash(key))
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(target)
		return "", fmt.Errorf("close file: %w", err)
	}
	return joinURL(s.urlPrefix, key), nil
}

func (s *LocalStore) Delete(ctx context.Context, key string) error {
	target, err := utils.SecureJoin(s.root, filepath.FromSlash(key))
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
