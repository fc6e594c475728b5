package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/booking-api/internal/config"
	"github.com/BruksfildServices01/booking-api/internal/usecase/slotgen"
)

type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ReportArchive keeps one JSON document per slot generation run.
type ReportArchive struct {
	client ObjectPutter
	bucket string
}

func NewReportArchive(client ObjectPutter, bucket string) *ReportArchive {
	return &ReportArchive{client: client, bucket: bucket}
}

// NewS3Client builds a client from static credentials. S3Endpoint switches
// to path-style addressing for MinIO and other compatible stores.
func NewS3Client(cfg *config.Config) *s3.Client {
	opts := s3.Options{
		Region: cfg.AWSRegion,
	}
	if cfg.AWSAccessKeyID != "" {
		opts.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)
	}
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func ReportKey(rep *slotgen.Report) string {
	return fmt.Sprintf("slot-runs/%s/%s.json", rep.TargetDate, rep.RunID)
}

func (a *ReportArchive) Store(ctx context.Context, rep *slotgen.Report) (string, error) {
	body, err := json.Marshal(rep)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	key := ReportKey(rep)
	if _, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("put %s/%s: %w", a.bucket, key, err)
	}

	return key, nil
}
