package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/incidentdesk/incidentdesk/internal/shared/config"
	"github.com/incidentdesk/incidentdesk/internal/shared/logger"
)

var photoKeyPattern = regexp.MustCompile(`^tickets/[0-9a-f-]{36}_\d+\.jpg$`)

func TestGeneratePhotoKey(t *testing.T) {
	key := GeneratePhotoKey("Leak.JPG")
	assert.Regexp(t, photoKeyPattern, key)
	assert.NotEqual(t, key, GeneratePhotoKey("Leak.JPG"))
}

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	key, err := s.Save(ctx, "leak.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"), 10)
	require.NoError(t, err)
	assert.Regexp(t, photoKeyPattern, key)

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))

	require.NoError(t, s.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(key)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Delete(ctx, key), "deleting twice is fine")
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	assert.Error(t, s.Delete(context.Background(), "../etc/passwd"))
}

func TestNew_FallsBackToLocal(t *testing.T) {
	cfg := &config.StorageConfig{Provider: "s3", LocalPath: t.TempDir()}

	s := New(context.Background(), cfg, logger.NewNopLogger())
	_, ok := s.(*LocalStorage)
	assert.True(t, ok)
}
