package blob

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Put(t *testing.T) {
	client := &fakePutter{}
	store := newS3Store(client, S3Config{Bucket: "boats", Region: "eu-north-1"})

	url, err := store.Put(context.Background(), "/boats/10/a.webp", []byte("img"), "image/webp")
	require.NoError(t, err)

	assert.Equal(t, "https://boats.s3.eu-north-1.amazonaws.com/boats/10/a.webp", url)
	assert.Equal(t, "boats", aws.ToString(client.in.Bucket))
	assert.Equal(t, "boats/10/a.webp", aws.ToString(client.in.Key))
	assert.Equal(t, "image/webp", aws.ToString(client.in.ContentType))
	assert.Equal(t, int64(3), aws.ToInt64(client.in.ContentLength))
	assert.Equal(t, []byte("img"), client.body)
}

func TestS3Store_BaseURL(t *testing.T) {
	store := newS3Store(&fakePutter{}, S3Config{Bucket: "boats", Endpoint: "http://minio:9000/"})
	assert.Equal(t, "http://minio:9000/boats", store.baseURL)

	store = newS3Store(&fakePutter{}, S3Config{Bucket: "boats", PublicBaseURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com", store.baseURL)
}

func TestS3Store_Errors(t *testing.T) {
	_, err := NewS3Store(S3Config{})
	assert.Error(t, err)

	store := newS3Store(&fakePutter{err: errors.New("denied")}, S3Config{Bucket: "boats", Region: "us-east-1"})
	_, err = store.Put(context.Background(), "k", nil, "")
	assert.ErrorContains(t, err, "denied")

	_, err = store.Put(context.Background(), " / ", nil, "")
	assert.ErrorContains(t, err, "key is required")
}
