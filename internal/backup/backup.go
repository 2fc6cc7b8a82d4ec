// Package backup exports every content store collection as a
// gzipped JSON object to an S3 compatible bucket, one timestamped
// object per collection.
package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/techhorizons/website/internal/cms"
	"github.com/techhorizons/website/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

// One exported collection: object name prefix and the query
// that dumps every document of that type
type collection struct {
	name  string
	query string
}

var collections = []collection{
	{"articles", `*[_type == "article"]`},
	{"categories", `*[_type == "category"]`},
	{"authors", `*[_type == "author"]`},
	{"pages", `*[_type == "page"]`},
	{"navigation", `*[_type == "navigation"]`},
}

type Service struct {
	config   *config.Config
	cms      *cms.Client
	s3Client *s3.Client
}

// New creates a backup service
func New(cfg *config.Config, cms *cms.Client, s3Client *s3.Client) *Service {
	return &Service{
		config:   cfg,
		cms:      cms,
		s3Client: s3Client,
	}
}

// Run exports every collection. A failed collection is logged and
// skipped so one bad export doesn't sink the whole backup run.
func (s *Service) Run(ctx context.Context) error {

	stamp := time.Now().Format("2006-01-02T15-04")

	var failed int
	for _, col := range collections {
		key := fmt.Sprintf("%s-%s.json.gz", col.name, stamp)
		if err := s.exportCollection(ctx, col, key); err != nil {
			log.Printf("failed to export collection %q: %v", col.name, err)
			failed++
			continue
		}
		log.Printf("exported collection %q to %q", col.name, key)
	}

	if failed == len(collections) {
		return errors.New("every collection export failed")
	}

	return nil
}

// Export one collection: fetch the raw JSON, compress it in memory
// and upload it to the bucket
func (s *Service) exportCollection(ctx context.Context, col collection, key string) error {

	raw, err := s.cms.QueryRaw(ctx, col.query, nil)
	if err != nil {
		return fmt.Errorf("could not fetch the collection; %w", err)
	}

	compressed, err := compress(raw)
	if err != nil {
		return fmt.Errorf("could not compress the collection; %w", err)
	}

	return s.upload(ctx, key, compressed)
}

// Gzip a byte slice in memory
func compress(data []byte) ([]byte, error) {

	buf := new(bytes.Buffer)
	gz, err := gzip.NewWriterLevel(buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip writer: %w", err)
	}

	if _, err = gz.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write to gzip writer: %w", err)
	}

	// Close the writer explicitly to flush all the bytes
	if err = gz.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	return buf.Bytes(), nil
}

// Upload an object to the bucket and wait for it to exist
func (s *Service) upload(ctx context.Context, key string, body []byte) error {

	bucket := s.config.BackupBucketName

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(body),
	})

	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "EntityTooLarge" {
			return fmt.Errorf(
				"error while uploading object to %s; The object is too large: %v",
				bucket, err,
			)
		}

		return fmt.Errorf(
			"couldn't upload object %s to %s: %v",
			key, bucket, err,
		)
	}

	err = s3.NewObjectExistsWaiter(s.s3Client).Wait(
		ctx,
		&s3.HeadObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		},
		time.Minute,
	)

	if err != nil {
		return fmt.Errorf(
			"failed attempt to wait for object %s to exist: %v",
			key, err,
		)
	}

	return nil
}
