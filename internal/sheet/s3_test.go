package sheet

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/washledger/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	getErr  error
	putErr  error
	puts    int
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{objects: map[string][]byte{}}
}

func (f *fakeObjects) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	b, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeObjects) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return nil, f.putErr
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = b
	f.puts++
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_WritesCSVWithHeader(t *testing.T) {
	objs := newFakeObjects()
	s := NewS3Store(objs, "bucket", "ledger/Washes.csv", []string{"Date", "Brand", "Price"})
	ctx := context.Background()

	require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026", "Alfa Romeo", "12,50"}))

	assert.Equal(t, "Date,Brand,Price\n15/10/2026,Alfa Romeo,\"12,50\"\n", string(objs.objects["bucket/ledger/Washes.csv"]))
	assert.Equal(t, 1, objs.puts)
}

func TestS3Store_ReadsDoNotUpload(t *testing.T) {
	objs := newFakeObjects()
	s := NewS3Store(objs, "bucket", "Washes.csv", testHeader)
	ctx := context.Background()

	_, err := s.ReadAllRows(ctx)
	require.NoError(t, err)
	_, err = s.FindCells(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, 0, objs.puts)
}

func TestS3Store_TransportErrorsAreUnavailable(t *testing.T) {
	objs := newFakeObjects()
	s := NewS3Store(objs, "bucket", "Washes.csv", testHeader)
	ctx := context.Background()

	objs.getErr = errors.New("connection refused")
	_, err := s.ReadAllRows(ctx)
	assert.ErrorIs(t, err, common.ErrUnavailable)

	objs.getErr = nil
	objs.putErr = errors.New("access denied")
	err = s.AppendRow(ctx, []string{"15/10/2026"})
	assert.ErrorIs(t, err, common.ErrUnavailable)

	objs.putErr = nil
	rows, err := s.ReadAllRows(ctx)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestS3Store_FailedMutationLeavesObjectUntouched(t *testing.T) {
	objs := newFakeObjects()
	s := NewS3Store(objs, "bucket", "Washes.csv", testHeader)
	ctx := context.Background()
	require.NoError(t, s.AppendRow(ctx, []string{"15/10/2026"}))

	err := s.DeleteRow(ctx, 5)
	assert.ErrorIs(t, err, common.ErrOutOfRange)
	assert.Equal(t, 1, objs.puts)
}

func TestOpenS3_UsesStaticCredentialsAndEndpoint(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	origNew := newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNew
	})

	var region string
	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		region = lo.Region
		require.NotNil(t, lo.Credentials)
		creds, err := lo.Credentials.Retrieve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "minio", creds.AccessKeyID)
		assert.Equal(t, "secret", creds.SecretAccessKey)
		return aws.Config{Region: lo.Region}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}

	s, err := OpenS3(context.Background(), S3Options{
		Region:       "eu-south-1",
		BaseEndpoint: "http://127.0.0.1:9000",
		AccessKey:    "minio",
		SecretKey:    "secret",
		Bucket:       "washes",
		Prefix:       "till-1/",
	}, "Washes", testHeader)
	require.NoError(t, err)

	assert.Equal(t, "eu-south-1", region)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "washes", s.bucket)
	assert.Equal(t, "till-1/Washes.csv", s.key)
}

func TestOpenS3_ConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no profile")
	}

	_, err := OpenS3(context.Background(), S3Options{}, "Washes", testHeader)
	require.Error(t, err)
}
