package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	appconfig "community-server/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI 是 S3Store 用到的 S3 客户端子集。
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store 把文件写入 S3 兼容的对象存储（AWS S3、MinIO 等）。
type S3Store struct {
	api       objectAPI
	bucket    string
	keyPrefix string
	publicURL string
}

func NewS3Store(api objectAPI, bucket, keyPrefix, publicBaseURL string) *S3Store {
	return &S3Store{api: api, bucket: bucket, keyPrefix: keyPrefix, publicURL: publicBaseURL}
}

func newS3API(ctx context.Context, cfg appconfig.S3Config) (*s3.Client, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Store) objectKey(key string) string {
	return path.Join(s.keyPrefix, key)
}

func (s *S3Store) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	objectKey := s.objectKey(key)
	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectKey, err)
	}
	return joinURL(s.publicURL, objectKey), nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.api.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	return err
}
