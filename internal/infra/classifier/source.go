package classifier

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

const maxBundleSize = 8 << 20

// Source fetches the raw model bundle.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// Load fetches and parses the bundle once, at startup.
func Load(ctx context.Context, src Source, logger *slog.Logger) (*outfit.Artifacts, error) {
	data, err := src.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch model bundle from %s: %w", src, err)
	}
	artifacts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load model bundle from %s: %w", src, err)
	}
	enc := artifacts.Encoders()
	attrs := []any{"source", src.String()}
	for _, e := range []*outfit.Encoder{enc.Mood, enc.Gender, enc.Weather, enc.Style, enc.Outfit} {
		attrs = append(attrs, e.Field()+"_classes", e.Len())
	}
	logger.Info("model bundle loaded", attrs...)
	return artifacts, nil
}

// FileSource reads the bundle from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) ([]byte, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f)
}

func (s FileSource) String() string { return "file:" + s.Path }

// ObjectSource reads the bundle from an S3-compatible bucket (S3, R2, MinIO).
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
}

// NewObjectSource builds a minio client for the bucket holding the bundle.
func NewObjectSource(endpoint, accessKey, secretKey, bucket, region, key string) (*ObjectSource, error) {
	useSSL := !strings.HasPrefix(strings.ToLower(strings.TrimSpace(endpoint)), "http://")
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object storage client: %w", err)
	}
	return &ObjectSource{client: client, bucket: bucket, key: key}, nil
}

func (s *ObjectSource) Fetch(ctx context.Context) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	// GetObject is lazy; Stat surfaces a missing key before reading.
	if _, err := obj.Stat(); err != nil {
		return nil, err
	}
	return readLimited(obj)
}

func (s *ObjectSource) String() string { return fmt.Sprintf("s3://%s/%s", s.bucket, s.key) }

func readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBundleSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxBundleSize {
		return nil, fmt.Errorf("model bundle exceeds %d bytes", maxBundleSize)
	}
	return data, nil
}

// sanitizeEndpoint removes schemes and paths to satisfy minio.New expectations.
func sanitizeEndpoint(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "https://"), "http://")
	if i := strings.Index(raw, "/"); i >= 0 {
		raw = raw[:i]
	}
	return raw
}
