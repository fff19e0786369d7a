// internal/adapters/storage/s3.go
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// ArchiveClient defines the interface for report archive operations
type ArchiveClient interface {
	Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// S3Archive implements ArchiveClient using AWS S3
type S3Archive struct {
	client     *s3.Client
	uploader   *manager.Uploader
	downloader *manager.Downloader
	bucket     string
	region     string
	logger     *slog.Logger
}

// S3Config holds S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // For MinIO/LocalStack
	UsePathStyle    bool   // For MinIO/LocalStack
}

// ArchiveKey builds the archive object key for a generated report file.
// Reports are grouped by generation month so retention sweeps can work
// on whole prefixes.
func ArchiveKey(generatedAt time.Time, filename string) string {
	return path.Join("reports", generatedAt.Format("2006"), generatedAt.Format("01"), filename)
}

// NewS3Archive creates a new S3 archive client
func NewS3Archive(ctx context.Context, cfg *S3Config, logger *slog.Logger) (*S3Archive, error) {
	awsCfg, err := buildAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	archive := &S3Archive{
		client:     client,
		uploader:   manager.NewUploader(client),
		downloader: manager.NewDownloader(client),
		bucket:     cfg.Bucket,
		region:     cfg.Region,
		logger:     logger.With(slog.String("storage", "s3")),
	}

	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket: %w", err)
	}

	logger.Info("S3 archive initialized",
		slog.String("bucket", cfg.Bucket),
		slog.String("region", cfg.Region))

	return archive, nil
}

// buildAWSConfig builds AWS configuration
func buildAWSConfig(ctx context.Context, cfg *S3Config) (aws.Config, error) {
	// Use custom credentials if provided
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		return config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				),
			),
		)
	}

	// Otherwise use default credential chain
	return config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
}

// ensureBucket ensures the bucket exists
func (s *S3Archive) ensureBucket(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(s.bucket),
	})

	if err != nil {
		_, createErr := s.client.CreateBucket(ctx, &s3.CreateBucketInput{
			Bucket: aws.String(s.bucket),
			CreateBucketConfiguration: &types.CreateBucketConfiguration{
				LocationConstraint: types.BucketLocationConstraint(s.region),
			},
		})

		if createErr != nil {
			return fmt.Errorf("bucket %s does not exist and could not be created: %w", s.bucket, createErr)
		}

		s.logger.Info("created S3 bucket", slog.String("bucket", s.bucket))
	}

	return nil
}

// Upload uploads a report file to the archive
func (s *S3Archive) Upload(ctx context.Context, key string, data io.Reader, contentType string) (string, error) {
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(key))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        data,
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
			"upload-id":   uuid.New().String(),
		},
	}

	result, err := s.uploader.Upload(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.InfoContext(ctx, "report archived",
		slog.String("key", key),
		slog.String("location", result.Location))

	return result.Location, nil
}

// Download downloads an archived report
func (s *S3Archive) Download(ctx context.Context, key string) ([]byte, error) {
	buf := manager.NewWriteAtBuffer([]byte{})

	_, err := s.downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to download report: %w", err)
	}

	s.logger.DebugContext(ctx, "report downloaded",
		slog.String("key", key),
		slog.Int("size", len(buf.Bytes())))

	return buf.Bytes(), nil
}

// Delete deletes an archived report
func (s *S3Archive) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}

	s.logger.InfoContext(ctx, "report deleted", slog.String("key", key))
	return nil
}

// GetPresignedURL generates a pre-signed URL for downloading an archived report
func (s *S3Archive) GetPresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.client)

	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = duration
	})

	if err != nil {
		return "", fmt.Errorf("failed to create presigned URL: %w", err)
	}

	return request.URL, nil
}

// List lists archived reports with a given prefix
func (s *S3Archive) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
	}

	s.logger.DebugContext(ctx, "listed archived reports",
		slog.String("prefix", prefix),
		slog.Int("count", len(keys)))

	return keys, nil
}

// Exists checks if an archived report exists
func (s *S3Archive) Exists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		if strings.Contains(err.Error(), "404") || strings.Contains(err.Error(), "NotFound") {
			return false, nil
		}
		return false, fmt.Errorf("failed to check report existence: %w", err)
	}

	return true, nil
}
