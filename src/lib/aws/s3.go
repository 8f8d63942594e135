package aws

import (
	"context"
	"errors"
	"log"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the part of the S3 client used for package images.
type S3API interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

func GetS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("Could not load default config: %s\n", err.Error())
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

// ObjectKeyFromURL extracts the object key from a public asset URL. Both
// virtual hosted (bucket.s3.amazonaws.com/key) and path style
// (s3.amazonaws.com/bucket/key) URLs are understood. For any other host the
// last path segment is used.
func ObjectKeyFromURL(bucket, raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	p := strings.TrimPrefix(u.Path, "/")
	if p == "" {
		return "", errors.New("url has no object key")
	}
	switch {
	case strings.HasPrefix(u.Host, bucket+"."):
		return p, nil
	case strings.HasPrefix(p, bucket+"/"):
		return strings.TrimPrefix(p, bucket+"/"), nil
	}
	return path.Base(p), nil
}

// S3ImageStore removes package images from the assets bucket.
type S3ImageStore struct {
	Client S3API
	Bucket string
}

func NewS3ImageStore(c S3API, bucket string) *S3ImageStore {
	return &S3ImageStore{Client: c, Bucket: bucket}
}

func (s *S3ImageStore) Delete(ctx context.Context, imageURL string) error {
	key, err := ObjectKeyFromURL(s.Bucket, imageURL)
	if err != nil {
		log.Printf("Could not extract object key from %s: %s\n", imageURL, err.Error())
		return err
	}
	_, err = s.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		log.Printf("Could not delete object [%s] from bucket [%s]: %s\n", key, s.Bucket, err.Error())
		return err
	}
	log.Printf("Deleted object '%s' from bucket '%s'", key, s.Bucket)
	return nil
}
