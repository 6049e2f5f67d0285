package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetapi/internal/response"
	"meetapi/internal/storage"
	storeMocks "meetapi/internal/storage/mocks"
)

func TestFileService_StoreReadDelete(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	svc := NewFileService(storage.NewLocalFs(afero.NewMemMapFs()), log)
	ctx := context.Background()
	content := []byte("\x89PNG\r\n\x1a\n avatar bytes")

	res := svc.Store(ctx, bytes.NewReader(content), "avatar.png", "image/png", int64(len(content)))
	require.True(t, res.Succeeded())

	name := res.Data
	assert.True(t, strings.HasSuffix(name, ".png"))
	_, err := uuid.Parse(strings.TrimSuffix(name, ".png"))
	assert.NoError(t, err)

	rc, _, err := svc.Open(ctx, name)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, content, got)

	assert.True(t, svc.Delete(ctx, name))

	_, _, err = svc.Open(ctx, name)
	assert.ErrorIs(t, err, storage.ErrNotExist)

	// a second delete finds nothing
	assert.False(t, svc.Delete(ctx, name))
}

func TestFileService_StoreBackslashNameStaysReachable(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	fsys := afero.NewMemMapFs()
	svc := NewFileService(storage.NewLocalFs(fsys), log)
	ctx := context.Background()

	res := svc.Store(ctx, strings.NewReader("scan"), `scan.pdf\evil`, "application/pdf", 4)
	require.True(t, res.Succeeded())
	assert.NotContains(t, res.Data, `\`)

	rc, _, err := svc.Open(ctx, res.Data)
	require.NoError(t, err)
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "scan", string(got))

	assert.True(t, svc.Delete(ctx, res.Data))
	entries, err := afero.ReadDir(fsys, "/")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStoredExt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "agenda.pdf", want: ".pdf"},
		{in: "archive.tar.gz", want: ".gz"},
		{in: "README", want: ""},
		{in: "", want: ""},
		{in: "trailing.", want: ""},
		{in: "..", want: ""},
		{in: `scan.pdf\evil`, want: ""},
		{in: `C:\Users\me\photo.JPG`, want: ".JPG"},
		{in: "dir.d/notes", want: ""},
		{in: "dir/notes.txt", want: ".txt"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := storedExt(tt.in)
			assert.Equal(t, tt.want, got)
			assert.True(t, validName("id"+got))
		})
	}
}

func TestFileService_StoreGeneratesDistinctNames(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	svc := NewFileService(storage.NewLocalFs(afero.NewMemMapFs()), log)
	ctx := context.Background()

	a := svc.Store(ctx, strings.NewReader("one"), "notes.txt", "text/plain", 3)
	b := svc.Store(ctx, strings.NewReader("two"), "notes.txt", "text/plain", 3)

	require.True(t, a.Succeeded())
	require.True(t, b.Succeeded())
	assert.NotEqual(t, a.Data, b.Data)
}

func TestFileService_Store(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		originalName string
		reader       io.Reader
		setupMocks   func(mStore *storeMocks.MockStorage, r io.Reader)
		wantName     string
		wantCode     response.Code
	}{
		{
			name:         "happy path keeps extension",
			originalName: "agenda.pdf",
			reader:       strings.NewReader("pdf"),
			setupMocks: func(mStore *storeMocks.MockStorage, r io.Reader) {
				mStore.On("Put", ctx, "fixed-id.pdf", r, storage.PutObjectOptions{
					Size:        3,
					ContentType: "application/pdf",
					Metadata:    map[string]string{"original-filename": "agenda.pdf"},
				}).Return(storage.ObjectInfo{Key: "fixed-id.pdf", Size: 3}, nil)
			},
			wantName: "fixed-id.pdf",
		},
		{
			name:         "no extension",
			originalName: "README",
			reader:       strings.NewReader("pdf"),
			setupMocks: func(mStore *storeMocks.MockStorage, r io.Reader) {
				mStore.On("Put", ctx, "fixed-id", r, mock.Anything).Return(storage.ObjectInfo{Key: "fixed-id"}, nil)
			},
			wantName: "fixed-id",
		},
		{
			name:         "storage failure is a failed envelope",
			originalName: "agenda.pdf",
			reader:       strings.NewReader("pdf"),
			setupMocks: func(mStore *storeMocks.MockStorage, r io.Reader) {
				mStore.On("Put", ctx, mock.Anything, r, mock.Anything).Return(storage.ObjectInfo{}, errors.New("disk full"))
			},
			wantCode: response.CodeInternal,
		},
		{
			name:         "nil reader",
			originalName: "agenda.pdf",
			setupMocks:   func(mStore *storeMocks.MockStorage, r io.Reader) {},
			wantCode:     response.CodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := logtest.NewNullLogger()
			mStore := new(storeMocks.MockStorage)
			svc := NewFileService(mStore, log).(*fileService)
			svc.newID = func() string { return "fixed-id" }
			tt.setupMocks(mStore, tt.reader)

			ct := "application/pdf"
			res := svc.Store(ctx, tt.reader, tt.originalName, ct, 3)

			if tt.wantCode != "" {
				require.False(t, res.Succeeded())
				assert.Equal(t, tt.wantCode, res.Err.Code)
				assert.Empty(t, res.Data)
			} else {
				require.True(t, res.Succeeded())
				assert.Equal(t, tt.wantName, res.Data)
			}
			mStore.AssertExpectations(t)
		})
	}
}

func TestFileService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("io error collapses to false and is logged", func(t *testing.T) {
		log, hook := logtest.NewNullLogger()
		mStore := new(storeMocks.MockStorage)
		svc := NewFileService(mStore, log)
		mStore.On("Delete", ctx, "a.txt").Return(errors.New("permission denied"))

		assert.False(t, svc.Delete(ctx, "a.txt"))
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		mStore.AssertExpectations(t)
	})

	t.Run("path traversal is rejected", func(t *testing.T) {
		log, _ := logtest.NewNullLogger()
		mStore := new(storeMocks.MockStorage)
		svc := NewFileService(mStore, log)

		for _, name := range []string{"", "..", "../etc/passwd", `..\boot.ini`, "sub/dir.txt"} {
			assert.False(t, svc.Delete(ctx, name), name)
		}
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestFileService_OpenInvalidName(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	svc := NewFileService(new(storeMocks.MockStorage), log)

	_, _, err := svc.Open(context.Background(), "../secret")

	assert.ErrorIs(t, err, ErrInvalidName)
}
