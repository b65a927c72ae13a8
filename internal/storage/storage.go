package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"time"

	"community-server/internal/config"
	"community-server/internal/utils"

	"github.com/google/uuid"
)

var (
	ErrInvalidFile  = errors.New("invalid file")
	ErrFileTooLarge = errors.New("file too large")
)

// FileStore 保存上传文件并返回可公开访问的引用地址。
type FileStore interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Stores 按用途区分的文件存储，帖子图片和头像分开存放。
type Stores struct {
	Posts   FileStore
	Avatars FileStore
}

// NewStores 根据 upload.driver 构建存储实现。
func NewStores(ctx context.Context) (*Stores, error) {
	cfg := config.Get()
	switch strings.ToLower(cfg.Upload.Driver) {
	case "", "local":
		return &Stores{
			Posts:   NewLocalStore(cfg.Upload.Path, cfg.Upload.URLPrefix),
			Avatars: NewLocalStore(cfg.Upload.AvatarPath, cfg.Upload.AvatarURLPrefix),
		}, nil
	case "s3":
		api, err := newS3API(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Posts:   NewS3Store(api, cfg.S3.Bucket, "posts", cfg.S3.PublicBaseURL),
			Avatars: NewS3Store(api, cfg.S3.Bucket, "avatars", cfg.S3.PublicBaseURL),
		}, nil
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.Upload.Driver)
	}
}

// SaveImage 校验上传图片的扩展名、大小和真实类型后写入存储。
func SaveImage(ctx context.Context, store FileStore, fh *multipart.FileHeader, allowedExt string, maxBytes int64) (string, error) {
	if fh == nil {
		return "", ErrInvalidFile
	}
	if maxBytes > 0 && fh.Size > maxBytes {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !utils.ExtensionAllowed(ext, allowedExt) {
		return "", ErrInvalidFile
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	if ok, _ := utils.ValidateImageContent(f, ext); !ok {
		return "", ErrInvalidFile
	}

	return store.Save(ctx, ObjectKey(time.Now(), ext), f, fh.Size, utils.ContentTypeForExt(ext))
}

// ObjectKey 生成按日期分目录的随机文件名，例如 2024/05/01/<uuid>.png。
func ObjectKey(now time.Time, ext string) string {
	return path.Join(now.Format("2006/01/02"), uuid.NewString()+ext)
}

func joinURL(prefix, key string) string {
	if prefix == "" {
		return "/" + key
	}
	return strings.TrimRight(prefix, "/") + "/" + key
}
