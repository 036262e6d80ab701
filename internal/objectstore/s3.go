package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"studyhall-api/internal/contextutil"
)

// signedURLTTL is how long generated download links stay valid.
const signedURLTTL = 15 * time.Minute

// Options configures the S3 store.
type Options struct {
	Bucket      string
	Region      string
	AccessKeyID string
	SecretKey   string
	// Endpoint overrides the AWS endpoint for S3-compatible providers.
	Endpoint     string
	UsePathStyle bool
}

// S3Store handles staged uploads and persistent document objects in
// S3-compatible storage.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
}

// NewS3Store creates a new S3-backed object store.
func NewS3Store(ctx context.Context, opts Options) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("bucket is required")
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.UsePathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})

	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  opts.Bucket,
	}, nil
}

// StageLocal downloads the object at remotePath into localPath and returns
// the local file path. The caller owns the local copy and must remove it with
// DeleteLocal when done.
func (s *S3Store) StageLocal(ctx context.Context, remotePath, localPath string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(remotePath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch staged object %s: %w", remotePath, err)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}

	f, err := os.Create(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to create local file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.ReadFrom(out.Body); err != nil {
		_ = os.Remove(localPath)
		return "", fmt.Errorf("failed to write local file: %w", err)
	}

	logger.DebugContext(ctx, "staged object locally", "remote", remotePath, "local", localPath)
	return localPath, nil
}

// RenamePersist moves a staged object to its persistent path and returns a
// signed URL for it. S3 has no rename, so this is copy-then-delete.
func (s *S3Store) RenamePersist(ctx context.Context, fromPath, toPath string) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	_, err := s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:     aws.String(s.bucket),
		CopySource: aws.String(s.bucket + "/" + url.PathEscape(fromPath)),
		Key:        aws.String(toPath),
	})
	if err != nil {
		return "", fmt.Errorf("failed to copy object %s to %s: %w", fromPath, toPath, err)
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fromPath),
	}); err != nil {
		// The copy succeeded; a leftover staged object is harmless
		logger.WarnContext(ctx, "failed to delete staged object", "path", fromPath, "error", err)
	}

	return s.SignedURL(ctx, toPath)
}

// DeleteLocal removes a locally staged file. Missing files are not an error.
func (s *S3Store) DeleteLocal(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove local file: %w", err)
	}
	return nil
}

// SignedURL returns a time-limited download URL for an object.
func (s *S3Store) SignedURL(ctx context.Context, path string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}, s3.WithPresignExpires(signedURLTTL))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", path, err)
	}
	return req.URL, nil
}

// DeleteObject removes a persistent object. Used when topics are deleted.
func (s *S3Store) DeleteObject(ctx context.Context, path string) error {
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(path),
	}); err != nil {
		return fmt.Errorf("failed to delete object %s: %w", path, err)
	}
	return nil
}
