package attachment

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds S3-compatible storage configuration.
type S3Config struct {
	// Bucket is used for plain keys. References of the form s3://bucket/key
	// override it.
	Bucket    string `env:"ATTACHMENT_S3_BUCKET"`
	AccessKey string `env:"ATTACHMENT_S3_ACCESS_KEY"`
	SecretKey string `env:"ATTACHMENT_S3_SECRET_KEY"`
	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"ATTACHMENT_S3_ENDPOINT"`
	Region   string `env:"ATTACHMENT_S3_REGION" envDefault:"us-east-1"`
	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool  `env:"ATTACHMENT_S3_PATH_STYLE"`
	MaxSize   int64 `env:"ATTACHMENT_MAX_SIZE"`
}

// DefaultRegion is used when S3Config.Region is empty.
const DefaultRegion = "us-east-1"

// objectGetter is the part of *s3.Client used by S3Source.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source loads attachments from S3-compatible object storage.
type S3Source struct {
	client objectGetter
	cfg    S3Config
}

// NewS3Source creates an S3 source with static credentials.
func NewS3Source(cfg S3Config) (*S3Source, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, ErrInvalidConfig
	}
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		}
	})

	return newS3Source(client, cfg), nil
}

func newS3Source(client objectGetter, cfg S3Config) *S3Source {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	return &S3Source{client: client, cfg: cfg}
}

// Open downloads the object. ref is either a key in the configured bucket
// or an s3://bucket/key URI.
func (s *S3Source) Open(ctx context.Context, ref string) (*File, error) {
	bucket, key, err := s.resolve(ref)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err)
	}
	defer out.Body.Close()

	if out.ContentLength != nil && *out.ContentLength > s.cfg.MaxSize {
		return nil, ErrTooLarge
	}

	data, err := readLimited(out.Body, s.cfg.MaxSize)
	if err != nil {
		return nil, fmt.Errorf("s3://%s/%s: %w", bucket, key, err)
	}

	filename := path.Base(key)
	contentType := aws.ToString(out.ContentType)
	if contentType == "" || contentType == MIMEOctetStream {
		contentType = DetectMIME(filename, data)
	}

	return &File{Filename: filename, ContentType: contentType, Content: data}, nil
}

func (s *S3Source) resolve(ref string) (string, string, error) {
	if rest, ok := strings.CutPrefix(ref, "s3://"); ok {
		bucket, key, _ := strings.Cut(rest, "/")
		if bucket == "" || key == "" {
			return "", "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
		}
		return bucket, key, nil
	}

	key := strings.TrimPrefix(ref, "/")
	if key == "" || s.cfg.Bucket == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidRef, ref)
	}
	return s.cfg.Bucket, key, nil
}

var _ Source = (*S3Source)(nil)
