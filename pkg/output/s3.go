package output

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/utemplates/internal/errors"
)

// ContentTypeHTML is the content type stored with uploaded documents.
const ContentTypeHTML = "text/html; charset=utf-8"

// PutObjectAPI is the subset of *s3.Client used by S3Sink.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads rendered documents to an S3 bucket.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	sink := output.NewS3Sink(s3.NewFromConfig(cfg), "my-site", "pages/")
//	err := sink.Write(ctx, "index.html", html)
type S3Sink struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
	now          func() time.Time
}

// NewS3Sink creates a sink writing to bucket, prefixing every key with
// prefix (e.g. "pages/").
func NewS3Sink(client PutObjectAPI, bucket, prefix string) *S3Sink {
	return &S3Sink{
		client: client,
		bucket: bucket,
		prefix: prefix,
		now:    time.Now,
	}
}

// WithCacheControl sets the Cache-Control header stored on each object.
func (s *S3Sink) WithCacheControl(v string) *S3Sink {
	s.cacheControl = v
	return s
}

// Key returns the object key used for name.
func (s *S3Sink) Key(name string) string {
	return s.prefix + strings.TrimPrefix(name, "/")
}

// Write uploads html under Key(name).
func (s *S3Sink) Write(ctx context.Context, name, html string) error {
	key := s.Key(name)
	input := &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          strings.NewReader(html),
		ContentLength: aws.Int64(int64(len(html))),
		ContentType:   aws.String(ContentTypeHTML),
		Metadata: map[string]string{
			"rendered-at": s.now().UTC().Format(time.RFC3339),
		},
	}
	if s.cacheControl != "" {
		input.CacheControl = aws.String(s.cacheControl)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return errors.New("E401").
			WithPath("s3://" + s.bucket + "/" + key).
			Wrap(err)
	}
	return nil
}
