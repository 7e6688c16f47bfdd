package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

var ErrInvalidS3Path = errors.New("invalid s3 path")

type Getter interface {
	Get(ctx context.Context, url string) (io.ReadCloser, error)
}

// Opener resolves a command line path to a readable stream.
type Opener struct {
	HTTP Getter
	// S3 is created from the default AWS session on first use when nil.
	S3 s3iface.S3API
}

func (o *Opener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(path, "s3://"):
		return o.openS3(ctx, path)
	case strings.HasPrefix(path, "http://"), strings.HasPrefix(path, "https://"):
		if o.HTTP == nil {
			return nil, fmt.Errorf("no http client configured for %s", path)
		}
		slog.Debug("fetching csv", "url", path)
		return o.HTTP.Get(ctx, path)
	default:
		return os.Open(path)
	}
}

func (o *Opener) openS3(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, key, ok := strings.Cut(strings.TrimPrefix(path, "s3://"), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidS3Path, path)
	}
	if o.S3 == nil {
		sess, err := session.NewSession()
		if err != nil {
			return nil, fmt.Errorf("failed to create aws session: %w", err)
		}
		o.S3 = s3.New(sess)
	}
	slog.Debug("fetching csv from s3", "bucket", bucket, "key", key)
	out, err := o.S3.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object from s3: %w", err)
	}
	return out.Body, nil
}
