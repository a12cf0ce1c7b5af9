package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/MKhiriev/go-ads-board/internal/config"
	"github.com/MKhiriev/go-ads-board/internal/logger"
	"github.com/MKhiriev/go-ads-board/internal/utils"
)

// s3API is the subset of *s3.Client used for avatars.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// avatarS3Storage keeps avatars as objects in one S3 (or MinIO) bucket.
type avatarS3Storage struct {
	client s3API
	bucket string
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewAvatarS3Storage builds an S3 client from cfg. Static credentials and a
// custom endpoint are used when configured, otherwise the default AWS
// credential chain applies.
func NewAvatarS3Storage(ctx context.Context, cfg config.S3, log *logger.Logger) (AvatarStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating avatar s3 storage")
	return newAvatarS3Storage(client, cfg.Bucket, log), nil
}

func newAvatarS3Storage(client s3API, bucket string, log *logger.Logger) *avatarS3Storage {
	return &avatarS3Storage{
		client: client,
		bucket: bucket,
		ids:    utils.NewUUIDGenerator(),
		logger: log,
	}
}

func (s *avatarS3Storage) Save(ctx context.Context, fileName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	// PutObject needs a seekable body to sign the payload
	data, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("error reading avatar: %w", err)
	}

	key := newAvatarKey(s.ids, fileName)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		log.Err(err).Str("func", "*avatarS3Storage.Save").Str("key", key).Msg("error putting avatar object")
		return "", fmt.Errorf("error putting avatar object: %w", err)
	}

	return key, nil
}

func (s *avatarS3Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validateAvatarKey(key); err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, ErrAvatarNotFound
		}
		return nil, fmt.Errorf("error getting avatar object: %w", err)
	}

	return out.Body, nil
}

// Delete removes the object. S3 treats deleting a missing key as success.
func (s *avatarS3Storage) Delete(ctx context.Context, key string) error {
	if err := validateAvatarKey(key); err != nil {
		return err
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*avatarS3Storage.Delete").Str("key", key).Msg("error deleting avatar object")
		return fmt.Errorf("error deleting avatar object: %w", err)
	}

	return nil
}
