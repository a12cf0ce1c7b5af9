package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-ads-board/internal/logger"
)

type fakeS3 struct {
	objects map[string][]byte
	putErr  error
	buckets []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.buckets = append(f.buckets, aws.ToString(in.Bucket))
	f.objects[aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestAvatarS3Storage_RoundTrip(t *testing.T) {
	fake := newFakeS3()
	s := newAvatarS3Storage(fake, "avatars", logger.Nop())
	ctx := context.Background()

	key, err := s.Save(ctx, "my photo.png", strings.NewReader("img"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(key, "_my_photo.png"), key)
	assert.Equal(t, []string{"avatars"}, fake.buckets)

	rc, err := s.Open(ctx, key)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "img", string(data))

	require.NoError(t, s.Delete(ctx, key))
	_, err = s.Open(ctx, key)
	assert.ErrorIs(t, err, ErrAvatarNotFound)
}

func TestAvatarS3Storage_SameNameDoesNotOverwrite(t *testing.T) {
	fake := newFakeS3()
	s := newAvatarS3Storage(fake, "avatars", logger.Nop())

	a, err := s.Save(context.Background(), "a.png", strings.NewReader("1"))
	require.NoError(t, err)
	b, err := s.Save(context.Background(), "a.png", strings.NewReader("2"))
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, fake.objects, 2)
}

func TestAvatarS3Storage_PutError(t *testing.T) {
	fake := newFakeS3()
	fake.putErr = errors.New("access denied")
	s := newAvatarS3Storage(fake, "avatars", logger.Nop())

	_, err := s.Save(context.Background(), "a.png", strings.NewReader("1"))
	assert.Error(t, err)
}
