package objectstore

import (
	"context"
	"errors"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// seams for testing the SDK wiring without network access
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	deleteObject = func(c *s3.Client, ctx context.Context, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
	headObject = func(c *s3.Client, ctx context.Context, in *s3.HeadObjectInput) (*s3.HeadObjectOutput, error) {
		return c.HeadObject(ctx, in)
	}
)

// S3Config carries the settings needed to reach the bucket. BaseEndpoint is
// non-empty when running against MinIO or another S3-compatible backend.
type S3Config struct {
	User         string
	Password     string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Client implements Client over an S3 bucket with static credentials.
type S3Client struct {
	client *s3.Client
	bucket string
}

// NewS3Client builds an S3-backed Client from static credentials and an
// optional base endpoint.
func NewS3Client(ctx context.Context, cfg S3Config) (*S3Client, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.User,
			cfg.Password,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
		}
		o.UsePathStyle = cfg.BaseEndpoint != ""
	})

	return &S3Client{client: client, bucket: cfg.Bucket}, nil
}

func (s *S3Client) Put(ctx context.Context, key string, body io.Reader) error {
	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   body,
	})
	return err
}

// Delete removes the key. S3 DeleteObject succeeds for absent keys, so the
// key's existence is checked first to let callers distinguish "was not
// there" from a real failure.
func (s *S3Client) Delete(ctx context.Context, key string) error {
	if _, err := headObject(s.client, ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}); err != nil {
		return err
	}

	_, err := deleteObject(s.client, ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

func (s *S3Client) IsNotFound(err error) bool {
	var noKey *types.NoSuchKey
	var notFound *types.NotFound
	return errors.As(err, &noKey) || errors.As(err, &notFound)
}
