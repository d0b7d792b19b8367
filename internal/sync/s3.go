package sync

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const snapshotContentType = "application/x-ndjson"

// S3Destination uploads each snapshot to a fixed object key in an
// S3-compatible bucket. Every export overwrites the previous object; the
// snapshot is self-contained, so there is no point keeping partial history.
type S3Destination struct {
	client *s3.Client
	bucket string
	key    string
}

// NewS3Destination resolves AWS credentials from the environment and returns
// a destination for the given bucket and key. A non-empty endpoint switches
// the client to path-style addressing, which MinIO and other S3-compatible
// stores require.
func NewS3Destination(ctx context.Context, bucket, key, region, endpoint string) (*S3Destination, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Destination{client: client, bucket: bucket, key: key}, nil
}

// Write uploads the snapshot, replacing whatever object is at the key.
func (d *S3Destination) Write(ctx context.Context, data []byte) error {
	_, err := d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(d.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(snapshotContentType),
	})
	if err != nil {
		return fmt.Errorf("put s3 object %s/%s: %w", d.bucket, d.key, err)
	}
	return nil
}
