package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/model"
	"clubsite/internal/storage"
)

const (
	galleryPrefix = "gallery/"
	presignExpiry = 15 * time.Minute
)

var (
	ErrReaderNil   = errors.New("reader is nil")
	ErrNotAnImage  = errors.New("only image uploads are accepted")
	ErrInvalidKey  = errors.New("invalid gallery key")
	ErrUnavailable = errors.New("gallery storage is not configured")
)

// GalleryService manages the images shown on the gallery page.
type GalleryService interface {
	// List returns every gallery image, newest first, with short-lived download URLs.
	List(ctx context.Context) ([]model.GalleryItem, error)

	// Upload stores an image under a generated key (UUID + original extension).
	Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.GalleryItem, error)

	// Delete removes an image by key.
	Delete(ctx context.Context, key string) error
}

type galleryService struct {
	store storage.Storage
}

// NewGalleryService constructs a GalleryService. A nil store yields a service
// whose every call fails with ErrUnavailable.
func NewGalleryService(store storage.Storage) GalleryService {
	return &galleryService{store: store}
}

func (s *galleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	if s.store == nil {
		return nil, ErrUnavailable
	}
	objs, err := s.store.List(ctx, galleryPrefix)
	if err != nil {
		return nil, fmt.Errorf("list storage: %w", err)
	}
	slices.SortStableFunc(objs, func(a, b storage.ObjectInfo) int {
		return b.LastModified.Compare(a.LastModified)
	})

	items := make([]model.GalleryItem, 0, len(objs))
	for _, o := range objs {
		u, err := s.store.PresignGet(ctx, o.Key, presignExpiry)
		if err != nil {
			return nil, fmt.Errorf("presign %s: %w", o.Key, err)
		}
		items = append(items, model.GalleryItem{
			Key:          o.Key,
			Size:         o.Size,
			ContentType:  o.ContentType,
			LastModified: o.LastModified,
			URL:          u,
		})
	}
	return items, nil
}

func (s *galleryService) Upload(ctx context.Context, r io.Reader, originalFilename, contentType string, size int64) (*model.GalleryItem, error) {
	if s.store == nil {
		return nil, ErrUnavailable
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(originalFilename))
	key := path.Join(strings.TrimSuffix(galleryPrefix, "/"), uuid.New().String()+ext)

	info, err := s.store.Put(ctx, key, r, storage.PutOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	u, err := s.store.PresignGet(ctx, info.Key, presignExpiry)
	if err != nil {
		// Upload succeeded; roll back so no unlisted object is left behind.
		if delErr := s.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	return &model.GalleryItem{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
		URL:          u,
	}, nil
}

func (s *galleryService) Delete(ctx context.Context, key string) error {
	if s.store == nil {
		return ErrUnavailable
	}
	if !strings.HasPrefix(key, galleryPrefix) || strings.Contains(key, "..") || len(key) == len(galleryPrefix) {
		return ErrInvalidKey
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	return nil
}
