package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3manager "github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hendrawan/sitevault/internal/config"
	"github.com/hendrawan/sitevault/internal/domain"
)

// S3Storage targets an S3 bucket prefix instead of an FTP directory.
type S3Storage struct {
	client   *s3.Client
	uploader *s3manager.Uploader
	bucket   string
	prefix   string
}

func NewS3(ctx context.Context, cfg *config.S3Config) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: load AWS config: %v", domain.ErrConnectionFailed, err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &S3Storage{
		client:   client,
		uploader: s3manager.NewUploader(client),
		bucket:   cfg.Bucket,
		prefix:   cfg.Prefix,
	}, nil
}

func (s *S3Storage) Upload(ctx context.Context, localPath string, remoteName string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrTransferFailed, localPath, err)
	}
	defer file.Close()

	key := s.key(remoteName)
	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   file,
	})
	if err != nil {
		return fmt.Errorf("%w: put %s: %v", domain.ErrTransferFailed, key, err)
	}
	return nil
}

func (s *S3Storage) List(ctx context.Context) ([]domain.RemoteFile, error) {
	resp, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: &s.bucket,
		Prefix: &s.prefix,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrListingFailed, err)
	}

	var files []domain.RemoteFile
	for _, obj := range resp.Contents {
		name := strings.TrimPrefix(strings.TrimPrefix(*obj.Key, s.prefix), "/")
		if name == "" {
			continue
		}
		files = append(files, domain.RemoteFile{Name: name, ModTime: *obj.LastModified})
	}
	return files, nil
}

func (s *S3Storage) Delete(ctx context.Context, remoteName string) error {
	key := s.key(remoteName)
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteDeleteFailed, key, err)
	}
	return nil
}

func (s *S3Storage) Close() error {
	return nil
}

func (s *S3Storage) key(remoteName string) string {
	return path.Join(s.prefix, remoteName)
}
