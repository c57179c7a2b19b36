package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "caixa.db"), os.DirFS("../.."))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDrafts_SaveGetList(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveDraft(Draft{ID: "d1", UserID: "u1", Source: "a.csv", Format: "csv", Items: 2, Payload: []byte(`{"items":[]}`), UpdatedAt: 100}))
	require.NoError(t, s.SaveDraft(Draft{ID: "d2", UserID: "u1", Source: "b.json", Format: "json", Payload: []byte(`{}`), UpdatedAt: 200}))
	require.NoError(t, s.SaveDraft(Draft{ID: "d3", UserID: "u2", Format: "csv", Payload: []byte(`{}`), UpdatedAt: 300}))

	d, err := s.GetDraft("d1")
	require.NoError(t, err)
	assert.Equal(t, "a.csv", d.Source)
	assert.Equal(t, 2, d.Items)
	assert.Equal(t, int64(100), d.CreatedAt)
	assert.JSONEq(t, `{"items":[]}`, string(d.Payload))

	list, err := s.ListDrafts("u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "d2", list[0].ID)
	assert.Equal(t, "d1", list[1].ID)
}

func TestDrafts_UpsertKeepsCreatedAt(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveDraft(Draft{ID: "d1", UserID: "u1", Format: "csv", Payload: []byte(`1`), UpdatedAt: 100}))
	require.NoError(t, s.SaveDraft(Draft{ID: "d1", UserID: "u1", Format: "csv", Items: 5, Payload: []byte(`2`), UpdatedAt: 150}))

	d, err := s.GetDraft("d1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), d.CreatedAt)
	assert.Equal(t, int64(150), d.UpdatedAt)
	assert.Equal(t, 5, d.Items)
	assert.Equal(t, "2", string(d.Payload))
}

func TestDrafts_OtherUserCannotOverwrite(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveDraft(Draft{ID: "d1", UserID: "u1", Format: "csv", Payload: []byte(`1`), UpdatedAt: 100}))
	err := s.SaveDraft(Draft{ID: "d1", UserID: "u2", Format: "csv", Payload: []byte(`2`), UpdatedAt: 150})
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

func TestDrafts_Delete(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.SaveDraft(Draft{ID: "d1", UserID: "u1", Format: "csv", Payload: []byte(`1`), UpdatedAt: 1}))

	require.NoError(t, s.DeleteDraft("d1"))
	_, err := s.GetDraft("d1")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, s.DeleteDraft("d1"), ErrRecordNotFound)
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "caixa.db")
	first, err := NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(path, os.DirFS("../.."))
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestStore_CloseReleasesDatabase(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "caixa.db"), os.DirFS("../.."))
	require.NoError(t, err)

	require.NoError(t, s.Close())

	_, err = s.ListDrafts("u-42")
	assert.ErrorContains(t, err, "database is closed")
}

func TestNewStore_MissingMigrations(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "caixa.db"), os.DirFS(t.TempDir()))
	assert.ErrorContains(t, err, "failed to migrate draft database")
}
