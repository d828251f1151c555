package repository_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CriisxD/rockerpizzaweb/internal/domain"
	"github.com/CriisxD/rockerpizzaweb/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	store, err := repository.NewFile(path)
	require.NoError(t, err)

	lines := []domain.CartLine{randomBundleLine(), randomCartLine()}
	require.NoError(t, store.Save(t.Context(), lines))

	loaded, err := store.Load(t.Context())
	require.NoError(t, err)

	require.Len(t, loaded, 2)
	for i := range lines {
		assertCartLine(t, lines[i], loaded[i])
	}
}

func TestFileStoreMissingFileMeansAbsent(t *testing.T) {
	store, err := repository.NewFile(filepath.Join(t.TempDir(), "never-written.json"))
	require.NoError(t, err)

	loaded, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"a cart`), 0o644))

	store, err := repository.NewFile(path)
	require.NoError(t, err)

	_, err = store.Load(t.Context())
	require.Error(t, err)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	store, err := repository.NewFile(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(t.Context(), []domain.CartLine{randomCartLine(), randomCartLine()}))
	require.NoError(t, store.Save(t.Context(), nil))

	loaded, err := store.Load(t.Context())
	require.NoError(t, err)
	assert.Empty(t, loaded)

	// no temp leftovers next to the cart file
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cart.json", entries[0].Name())
}

func TestFileStoreEmptyPath(t *testing.T) {
	_, err := repository.NewFile("")
	require.EqualError(t, err, "path is empty")
}
