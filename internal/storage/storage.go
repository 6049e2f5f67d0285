// Package storage contains the content root abstraction uploaded files are written to.
// Backends: a local directory (afero) and S3-compatible object stores (MinIO).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"meetapi/internal/config"
)

// ErrNotExist is returned when no object is stored under the requested key.
var ErrNotExist = errors.New("object does not exist")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known; if unknown, set to -1 and the implementation
// will buffer/chunk as supported by the backend.
// ContentType and Metadata are optional.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about an object in storage.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the content root every stored file lives under.
// Methods use context and streaming readers; keys are flat names.
type Storage interface {
	// Put writes an object under key, replacing any previous content.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key. It returns ErrNotExist if nothing was stored under key.
	Delete(ctx context.Context, key string) error
}

// FromConfig opens the backend selected by fc.Backend.
func FromConfig(fc config.FileStoreConfig, mc config.MinIOConfig) (Storage, error) {
	switch fc.Backend {
	case "", "local":
		return NewLocal(fc.ContentRoot)
	case "minio":
		return NewMinIO(mc)
	default:
		return nil, fmt.Errorf("unknown file store backend %q", fc.Backend)
	}
}
