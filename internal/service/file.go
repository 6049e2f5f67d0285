package service

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"meetapi/internal/response"
	"meetapi/internal/storage"
)

var (
	ErrReaderNil   = errors.New("reader is nil")
	ErrInvalidName = errors.New("invalid file name")
)

// FileService persists uploaded files under generated names.
type FileService interface {
	// Store writes r under a new name made of a random UUID and the extension
	// of originalName's last path element. Either separator style counts.
	// On success the envelope carries the generated name.
	Store(ctx context.Context, r io.Reader, originalName, contentType string, size int64) response.Response[string]

	// Open streams a stored file back. Missing files yield storage.ErrNotExist.
	Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error)

	// Delete removes a stored file. A missing file and an I/O failure both
	// report false; the cause is only logged.
	Delete(ctx context.Context, name string) bool
}

type fileService struct {
	store storage.Storage
	log   logrus.FieldLogger
	newID func() string
}

// NewFileService constructs a FileService writing to store.
func NewFileService(store storage.Storage, log logrus.FieldLogger) FileService {
	return &fileService{store: store, log: log, newID: uuid.NewString}
}

func (s *fileService) Store(ctx context.Context, r io.Reader, originalName, contentType string, size int64) response.Response[string] {
	op := startOp(s.log, "file_service", "Store", logrus.Fields{
		"original_filename": originalName,
		"size":              size,
	})
	if r == nil {
		op.rejected(ErrReaderNil.Error())
		return response.BadRequest[string](ErrReaderNil.Error())
	}

	name := s.newID() + storedExt(originalName)
	op.entry = op.entry.WithField("file_name", name)

	if _, err := s.store.Put(ctx, name, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalName,
		},
	}); err != nil {
		op.failure(err)
		return response.Internal[string](err)
	}

	op.success()
	return response.OK(name)
}

func (s *fileService) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	if !validName(name) {
		return nil, storage.ObjectInfo{}, ErrInvalidName
	}
	return s.store.Get(ctx, name)
}

func (s *fileService) Delete(ctx context.Context, name string) bool {
	op := startOp(s.log, "file_service", "Delete", logrus.Fields{"file_name": name})
	if !validName(name) {
		op.rejected(ErrInvalidName.Error())
		return false
	}

	if err := s.store.Delete(ctx, name); err != nil {
		op.failure(err)
		return false
	}

	op.success()
	return true
}

// storedExt returns the extension of the client file name, or "" when there
// is none. The result never contains a path separator.
func storedExt(originalName string) string {
	ext := path.Ext(path.Base(strings.ReplaceAll(originalName, `\`, "/")))
	if ext == "." {
		return ""
	}
	return ext
}

// validName accepts only flat names, as produced by Store.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
