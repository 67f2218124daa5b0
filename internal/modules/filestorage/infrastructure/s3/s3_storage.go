package s3

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/saransh1220/framesync/internal/modules/filestorage/domain"
)

// S3Config holds configuration for S3-compatible storage
type S3Config struct {
	BucketName     string
	Region         string
	Endpoint       string // API endpoint, e.g. https://storage.yandexcloud.net
	PublicEndpoint string // Endpoint used to build public object URLs
	AccessKey      string
	SecretKey      string
}

// S3Storage implements FileStorage using an S3-compatible bucket with
// path-style addressing
type S3Storage struct {
	client *s3.Client
	config S3Config
}

// NewS3Storage creates a new S3 storage implementation
func NewS3Storage(ctx context.Context, cfg S3Config) (*S3Storage, error) {
	if cfg.BucketName == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(withScheme(cfg.Endpoint))
			o.UsePathStyle = true
		}
		// Third-party S3 implementations reject the default trailing checksums
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3Storage{
		client: client,
		config: cfg,
	}, nil
}

// ListObjects pages through ListObjectsV2 until the listing is complete
func (s *S3Storage) ListObjects(ctx context.Context, prefix, delimiter string) (*domain.Listing, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(s.config.BucketName),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}
	if delimiter != "" {
		input.Delimiter = aws.String(delimiter)
	}

	listing := &domain.Listing{}
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list s3 objects: %w", err)
		}
		for _, cp := range page.CommonPrefixes {
			listing.Folders = append(listing.Folders, strings.TrimSuffix(aws.ToString(cp.Prefix), delimiter))
		}
		for _, obj := range page.Contents {
			listing.Objects = append(listing.Objects, domain.Object{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return listing, nil
}

// PutObject uploads body to the bucket under key
func (s *S3Storage) PutObject(ctx context.Context, key string, body io.Reader, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.BucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to s3: %w", err)
	}
	return nil
}

// PublicURL returns {endpoint}/{bucket}/{key} with each key segment escaped
func (s *S3Storage) PublicURL(key string) string {
	endpoint := s.config.PublicEndpoint
	if endpoint == "" {
		endpoint = s.config.Endpoint
	}
	if endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.BucketName, s.config.Region, domain.EscapeKey(key))
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(withScheme(endpoint), "/"), s.config.BucketName, domain.EscapeKey(key))
}

var _ domain.FileStorage = (*S3Storage)(nil)

// withScheme defaults endpoints without a scheme to https
func withScheme(endpoint string) string {
	if hasHTTPPrefix(endpoint) {
		return endpoint
	}
	return "https://" + endpoint
}

// hasHTTPPrefix checks if a string has http:// or https:// prefix
func hasHTTPPrefix(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
