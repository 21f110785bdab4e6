package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ponder/internal/adapters/cas"
	"go.trai.ch/ponder/internal/adapters/fs"
	"go.trai.ch/ponder/internal/core/domain"
	"go.trai.ch/ponder/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newDetector(t *testing.T, root string) (*fs.Detector, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	store, err := cas.NewStore()
	require.NoError(t, err)
	d, err := fs.NewDetector(root, store, logger)
	require.NoError(t, err)
	return d, logger
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestDetector_Detect(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "schema.graphql")
	writeFile(t, path, "type A { id: ID! }")
	d, _ := newDetector(t, root)

	content, changed := d.Detect(path)
	assert.True(t, changed, "first observation is a change")
	assert.Equal(t, "type A { id: ID! }", string(content))

	_, changed = d.Detect(path)
	assert.False(t, changed)

	writeFile(t, path, "type A { id: ID! name: String }")
	content, changed = d.Detect(path)
	assert.True(t, changed)
	assert.Equal(t, "type A { id: ID! name: String }", string(content))
}

func TestDetector_TouchWithoutContentChange(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ponder.yaml")
	writeFile(t, path, "networks: []")
	d, _ := newDetector(t, root)

	_, changed := d.Detect(path)
	require.True(t, changed)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	writeFile(t, path, "networks: []")

	_, changed = d.Detect(path)
	assert.False(t, changed, "metadata changes are not content changes")
}

func TestDetector_UnreadableFileLeavesStateUnchanged(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "ponder.yaml")
	writeFile(t, path, "networks: []")
	d, logger := newDetector(t, root)

	_, changed := d.Detect(path)
	require.True(t, changed)
	before, ok := d.Fingerprint(path)
	require.True(t, ok)

	require.NoError(t, os.Remove(path))
	logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, domain.ErrInputRead.Error())
	}).Times(1)

	content, changed := d.Detect(path)
	assert.False(t, changed)
	assert.Nil(t, content)

	after, ok := d.Fingerprint(path)
	require.True(t, ok)
	assert.Equal(t, before, after)

	// The editor writes the same bytes back: still no change.
	writeFile(t, path, "networks: []")
	_, changed = d.Detect(path)
	assert.False(t, changed)
}

func TestDetector_HydratesFromStore(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "schema.graphql")
	writeFile(t, path, "type A { id: ID! }")

	first, _ := newDetector(t, root)
	_, changed := first.Detect(path)
	require.True(t, changed)
	first.MarkParsed(path, time.Unix(1700000000, 0))

	second, _ := newDetector(t, root)
	_, changed = second.Detect(path)
	assert.False(t, changed, "a restarted session reuses persisted fingerprints")

	store, err := cas.NewStore()
	require.NoError(t, err)
	rec, err := store.Get(root, path)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, fs.Fingerprint([]byte("type A { id: ID! }")), rec.Fingerprint)
	assert.True(t, rec.LastParsedAt.Equal(time.Unix(1700000000, 0)))
}

func TestDetector_ReadRecordsFingerprint(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "schema.graphql")
	writeFile(t, path, "type A { id: ID! }")
	d, _ := newDetector(t, root)

	content, err := d.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "type A { id: ID! }", string(content))

	_, changed := d.Detect(path)
	assert.False(t, changed)

	_, err = d.Read(filepath.Join(root, "missing"))
	require.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	a := fs.Fingerprint([]byte("a"))
	assert.Len(t, a, 16)
	assert.Equal(t, a, fs.Fingerprint([]byte("a")))
	assert.NotEqual(t, a, fs.Fingerprint([]byte("b")))
}

func TestDetector_ForgetDropsPersistedRecord(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "schema.graphql")
	writeFile(t, path, "type A { id: ID! }")

	first, _ := newDetector(t, root)
	_, err := first.Read(path)
	require.NoError(t, err)

	second, _ := newDetector(t, root)
	second.Forget(path)
	_, ok := second.Fingerprint(path)
	assert.False(t, ok)

	_, changed := second.Detect(path)
	assert.True(t, changed, "a forgotten input is a change even with identical content")

	second.Forget(path)
	third, _ := newDetector(t, root)
	_, changed = third.Detect(path)
	assert.True(t, changed, "the on-disk record is gone")
}
