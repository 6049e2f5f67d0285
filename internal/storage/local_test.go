package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewLocalFs(fsys)
	ctx := context.Background()
	content := []byte("%PDF-1.7 agenda")

	info, err := store.Put(ctx, "a1.pdf", bytes.NewReader(content), PutObjectOptions{Size: int64(len(content)), ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, "a1.pdf", info.Key)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.Equal(t, "application/pdf", info.ContentType)

	exists, err := afero.Exists(fsys, "a1.pdf.part")
	require.NoError(t, err)
	assert.False(t, exists)

	rc, got, err := store.Get(ctx, "a1.pdf")
	require.NoError(t, err)
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, content, b)
	assert.Equal(t, int64(len(content)), got.Size)

	require.NoError(t, store.Delete(ctx, "a1.pdf"))

	_, _, err = store.Get(ctx, "a1.pdf")
	assert.ErrorIs(t, err, ErrNotExist)
}

func TestLocalStorage_DeleteMissing(t *testing.T) {
	store := NewLocalFs(afero.NewMemMapFs())

	err := store.Delete(context.Background(), "nope.txt")

	assert.ErrorIs(t, err, ErrNotExist)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("client went away") }

func TestLocalStorage_PutFailureLeavesNothing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewLocalFs(fsys)

	_, err := store.Put(context.Background(), "b2.txt", io.MultiReader(strings.NewReader("half"), failingReader{}), PutObjectOptions{Size: -1})
	require.Error(t, err)

	for _, name := range []string{"b2.txt", "b2.txt.part"} {
		exists, err := afero.Exists(fsys, name)
		require.NoError(t, err)
		assert.False(t, exists, name)
	}
}

// statFailFs fails every Stat, as a flaky filesystem might right after a rename.
type statFailFs struct {
	afero.Fs
}

func (statFailFs) Stat(string) (os.FileInfo, error) { return nil, errors.New("stat: i/o error") }

func TestLocalStorage_PutSucceedsWhenStatFails(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewLocalFs(statFailFs{Fs: fsys})
	before := time.Now()

	info, err := store.Put(context.Background(), "b2.txt", strings.NewReader("minutes"), PutObjectOptions{Size: 7})

	require.NoError(t, err)
	assert.Equal(t, "b2.txt", info.Key)
	assert.Equal(t, int64(7), info.Size)
	assert.False(t, info.LastModified.Before(before))

	b, err := afero.ReadFile(fsys, "b2.txt")
	require.NoError(t, err)
	assert.Equal(t, "minutes", string(b))
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewLocalFs(fsys)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Put(ctx, "c3.txt", strings.NewReader("data"), PutObjectOptions{})
	assert.ErrorIs(t, err, context.Canceled)

	exists, err := afero.Exists(fsys, "c3.txt")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNewLocal(t *testing.T) {
	dir := t.TempDir()

	store, err := NewLocal(dir + "/files")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "d4.txt", strings.NewReader("on disk"), PutObjectOptions{Size: 7})
	require.NoError(t, err)

	exists, err := afero.Exists(afero.NewOsFs(), dir+"/files/d4.txt")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = NewLocal("")
	assert.Error(t, err)
}
