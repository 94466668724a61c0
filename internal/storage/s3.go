// Package storage uploads scholarship images to an S3-compatible bucket
// (MinIO, R2 or AWS proper) and hands back the public URL.
package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	appconfig "github.com/opportunest/opportunest-server/internal/config"
	"github.com/opportunest/opportunest-server/internal/domain"
)

// Uploader is the piece of storage handlers depend on.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, error)
}

type S3Client struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

func NewS3Client(ctx context.Context, cfg *appconfig.Config) (*S3Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}
	if cfg.S3Endpoint != "" {
		resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{URL: cfg.S3Endpoint, HostnameImmutable: true}, nil
		})
		opts = append(opts, awsconfig.WithEndpointResolverWithOptions(resolver))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3UsePathStyle
	})

	base := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimSuffix(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}

	return &S3Client{client: client, bucket: cfg.S3Bucket, publicBaseURL: base}, nil
}

// ObjectKey derives a collision-free key, keeping the original extension so
// the bucket serves the right Content-Type to browsers.
func ObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return "images/" + uuid.NewString() + ext
}

// Upload stores the image and returns its public URL. The error maps to the
// upstream taxonomy so handlers answer 500 without leaking bucket details.
func (c *S3Client) Upload(ctx context.Context, filename, contentType string, size int64, body io.Reader) (string, error) {
	key := ObjectKey(filename)
	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}

	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", domain.ErrUpstream("image upload failed")
	}
	return c.publicBaseURL + "/" + key, nil
}
