package sheet

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectAPI is the part of the S3 client the sheet needs.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options locates the sheet object and the credentials to reach it.
type S3Options struct {
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
	Bucket       string
	Prefix       string
}

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = s3.NewFromConfig
)

// S3Store keeps the whole sheet as one CSV object. Every primitive
// downloads the object, applies the change and uploads it again, so two
// tills writing at the same moment may overwrite each other.
type S3Store struct {
	mu     sync.Mutex
	api    ObjectAPI
	bucket string
	key    string
	header []string
}

// NewS3Store wraps an existing client.
func NewS3Store(api ObjectAPI, bucket, key string, header []string) *S3Store {
	return &S3Store{api: api, bucket: bucket, key: key, header: append([]string(nil), header...)}
}

// OpenS3 builds a client with static credentials and returns the store for
// <prefix><sheet>.csv in the configured bucket.
func OpenS3(ctx context.Context, opts S3Options, sheet string, header []string) (*S3Store, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(opts.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if opts.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(opts.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return NewS3Store(client, opts.Bucket, opts.Prefix+sheet+".csv", header), nil
}

func (s *S3Store) load(ctx context.Context) (grid, error) {
	out, err := s.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	var missing *types.NoSuchKey
	if errors.As(err, &missing) {
		return newGrid(s.header), nil
	}
	if err != nil {
		return nil, unavailable("get object", err)
	}
	defer out.Body.Close()

	r := csv.NewReader(out.Body)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	if len(records) == 0 {
		return newGrid(s.header), nil
	}
	return grid(records), nil
}

func (s *S3Store) save(ctx context.Context, g grid) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(g); err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}

	_, err := s.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return unavailable("put object", err)
	}
	return nil
}

func (s *S3Store) update(ctx context.Context, fn func(g *grid) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&g); err != nil {
		return err
	}
	return s.save(ctx, g)
}

func (s *S3Store) ReadAllRows(ctx context.Context) ([]Row, error) {
	g, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return g.rows(), nil
}

func (s *S3Store) AppendRow(ctx context.Context, values []string) error {
	return s.update(ctx, func(g *grid) error { return g.appendRow(values) })
}

func (s *S3Store) FindCells(ctx context.Context, value string) ([]Cell, error) {
	g, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return g.find(value), nil
}

func (s *S3Store) ReadCell(ctx context.Context, row, col int) (string, error) {
	g, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	return g.cell(row, col)
}

func (s *S3Store) WriteCell(ctx context.Context, row, col int, value string) error {
	return s.update(ctx, func(g *grid) error { return g.set(row, col, value) })
}

func (s *S3Store) DeleteRow(ctx context.Context, row int) error {
	return s.update(ctx, func(g *grid) error { return g.deleteRow(row) })
}
