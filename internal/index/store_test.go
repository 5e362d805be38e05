package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/winget-types/pkg/manifest"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{Backend: BackendSQLite, DataDir: t.TempDir()}
}

func attachedStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Attach(testConfig(t)))
	t.Cleanup(func() { _ = s.Detach() })
	return s
}

func testKey(t *testing.T, version string) Key {
	t.Helper()
	v, err := manifest.NewPackageVersion(version)
	require.NoError(t, err)
	return Key{
		Identifier: "Package.Identifier",
		Version:    v,
		Kind:       manifest.ManifestTypeInstaller,
	}
}

func TestStoreAttach(t *testing.T) {
	config := testConfig(t)

	s := New()
	require.NoError(t, s.Attach(config))
	defer s.Detach()

	_, err := os.Stat(filepath.Join(config.DataDir, dbFileName))
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Attach(config), ErrAlreadyAttached)
}

func TestStoreAttachRejectsBadConfig(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Attach(Config{}), ErrBackendEmpty)
	assert.ErrorIs(t, s.Attach(Config{Backend: "postgres"}), ErrBackendUnknown)
}

func TestStoreDetachIsIdempotent(t *testing.T) {
	s := New()
	require.NoError(t, s.Attach(testConfig(t)))
	require.NoError(t, s.Detach())
	require.NoError(t, s.Detach())

	_, err := s.Get(testKey(t, "1.0.0"))
	assert.ErrorIs(t, err, ErrDetached)
}

func TestStorePutGet(t *testing.T) {
	s := attachedStore(t)
	key := testKey(t, "1.2.3")

	id, err := s.Put(key, "PackageIdentifier: Package.Identifier\n")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	entry, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, id, entry.ID)
	assert.Equal(t, key, entry.Key)
	assert.Equal(t, "PackageIdentifier: Package.Identifier\n", entry.Document)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestStorePutUpdatesKeepRowID(t *testing.T) {
	s := attachedStore(t)
	key := testKey(t, "1.2.3")

	id, err := s.Put(key, "first")
	require.NoError(t, err)

	again, err := s.Put(key, "second")
	require.NoError(t, err)
	assert.Equal(t, id, again)

	entry, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, "second", entry.Document)
}

func TestStorePutRejectsInvalidKey(t *testing.T) {
	s := attachedStore(t)

	_, err := s.Put(Key{}, "doc")
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestStoreGetNotFound(t *testing.T) {
	s := attachedStore(t)

	_, err := s.Get(testKey(t, "9.9.9"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	s := attachedStore(t)
	key := testKey(t, "1.2.3")

	_, err := s.Put(key, "doc")
	require.NoError(t, err)

	require.NoError(t, s.Delete(key))
	_, err = s.Get(key)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Delete(key), ErrNotFound)
}

func TestStoreList(t *testing.T) {
	s := attachedStore(t)

	for _, version := range []string{"1.0.0", "1.1.0"} {
		_, err := s.Put(testKey(t, version), "doc "+version)
		require.NoError(t, err)
	}
	other := testKey(t, "2.0.0")
	other.Identifier = "Other.Package"
	_, err := s.Put(other, "other doc")
	require.NoError(t, err)

	entries, err := s.List("Package.Identifier")
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	all, err := s.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStoreVersionsSorted(t *testing.T) {
	s := attachedStore(t)

	// Lexicographic order would put 1.10.0 before 1.9.0.
	for _, version := range []string{"1.10.0", "1.2.0", "1.9.0"} {
		_, err := s.Put(testKey(t, version), "doc")
		require.NoError(t, err)
	}

	versions, err := s.Versions("Package.Identifier")
	require.NoError(t, err)

	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.String()
	}
	assert.Equal(t, []string{"1.2.0", "1.9.0", "1.10.0"}, got)
}

func TestStoreClosest(t *testing.T) {
	s := attachedStore(t)

	for _, version := range []string{"1.0.0", "1.2.0", "2.0.0"} {
		_, err := s.Put(testKey(t, version), "doc")
		require.NoError(t, err)
	}

	target, err := manifest.NewPackageVersion("1.2.1")
	require.NoError(t, err)

	closest, err := s.Closest("Package.Identifier", target)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", closest.String())

	_, err = s.Closest("Missing.Package", target)
	assert.ErrorIs(t, err, ErrNoVersions)
}
