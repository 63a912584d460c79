package common

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"adcopy/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
)

// objectPutter is the part of the S3 API the archive needs
type objectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3 wraps the AWS SDK for Go v2 S3 client with a narrow interface we can mock.
type S3 struct {
	client objectPutter
}

// NewS3 creates a new S3 wrapper using the default AWS configuration chain,
// with optional overrides from the S3 config.
func NewS3(ctx context.Context, cfg config.S3Config) (*S3, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.Profile))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	c := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
	})
	return &S3{client: c}, nil
}

// Put uploads an object to the given bucket/key.
// If contentType is non-empty, it is set on the object.
func (s *S3) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	in := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	_, err := s.client.PutObject(ctx, in)
	return err
}

// ExportArchive keeps a copy of every text export in a bucket
type ExportArchive struct {
	s3     *S3
	bucket string
	prefix string
	now    func() time.Time
}

// NewExportArchive creates an archive writing under prefix in bucket
func NewExportArchive(s *S3, bucket, prefix string) *ExportArchive {
	return &ExportArchive{s3: s, bucket: bucket, prefix: prefix, now: time.Now}
}

// Save uploads an export and returns its object key
func (a *ExportArchive) Save(ctx context.Context, sessionID, filename, text string) (string, error) {
	key := ExportKey(a.prefix, sessionID, filename, a.now())
	err := a.s3.Put(ctx, a.bucket, key, strings.NewReader(text), "text/plain; charset=utf-8")
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("failed to archive export (%s): %w", apiErr.ErrorCode(), err)
		}
		return "", fmt.Errorf("failed to archive export: %w", err)
	}
	return key, nil
}

// ExportKey builds the object key for an export:
// <prefix>exports/<yyyy-mm-dd>/<session>/<uuid>-<filename>
func ExportKey(prefix, sessionID, filename string, at time.Time) string {
	if sessionID == "" {
		sessionID = "anonymous"
	}
	return fmt.Sprintf("%s%s%s/%s/%s-%s",
		prefix, config.ExportPrefix, at.UTC().Format("2006-01-02"), sessionID, uuid.NewString(), filename)
}
