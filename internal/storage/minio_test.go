package storage

import (
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"

	"clubsite/internal/config"
)

func TestNewMinIO_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.MinIOConfig
		want string
	}{
		{name: "missing endpoint", cfg: config.MinIOConfig{}, want: "minio endpoint is required"},
		{name: "missing credentials", cfg: config.MinIOConfig{Endpoint: "localhost:9000"}, want: "minio credentials are required"},
		{
			name: "missing bucket",
			cfg:  config.MinIOConfig{Endpoint: "localhost:9000", AccessKey: "a", SecretKey: "b"},
			want: "minio bucket is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewMinIO(tt.cfg)
			assert.EqualError(t, err, tt.want)
			assert.Nil(t, s)
		})
	}
}

func TestContentTypeOf(t *testing.T) {
	assert.Equal(t, "image/webp", contentTypeOf(minio.ObjectInfo{Key: "gallery/a.jpg", ContentType: "image/webp"}))
	assert.Equal(t, "image/png", contentTypeOf(minio.ObjectInfo{Key: "gallery/a.png"}))
	assert.Empty(t, contentTypeOf(minio.ObjectInfo{Key: "gallery/noext"}))
}
