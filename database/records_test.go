package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"registro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) (*Repository, *DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "registro-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := New(dbPath)
	require.NoError(t, err)

	err = db.EnsureSchema()
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return repo, db, cleanup
}

func TestEnsureSchema(t *testing.T) {
	repo, db, cleanup := setupTestRepo(t)
	defer cleanup()

	t.Run("Idempotent on repeated calls", func(t *testing.T) {
		require.NoError(t, db.EnsureSchema())
		require.NoError(t, repo.EnsureSchema())
	})

	t.Run("Existing rows survive a second ensure", func(t *testing.T) {
		rec, err := repo.Insert("Leer libro")
		require.NoError(t, err)

		require.NoError(t, db.EnsureSchema())

		records, err := repo.ListAll()
		require.NoError(t, err)
		assert.Contains(t, records, rec)
	})

	t.Run("Fails with schema error on closed handle", func(t *testing.T) {
		closed, err := New(filepath.Join(t.TempDir(), "closed.db"))
		require.NoError(t, err)
		require.NoError(t, closed.Close())

		err = closed.EnsureSchema()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchema))
		assert.False(t, errors.Is(err, ErrWrite))
	})
}

func TestRecordScenarios(t *testing.T) {
	repo, _, cleanup := setupTestRepo(t)
	defer cleanup()

	// The steps build on each other, in order.
	t.Run("Insert first record", func(t *testing.T) {
		rec, err := repo.Insert("Leer libro")
		require.NoError(t, err)
		assert.Equal(t, models.Record{ID: 1, Text: "Leer libro"}, rec)

		records, err := repo.ListAll()
		require.NoError(t, err)
		assert.Equal(t, []models.Record{{ID: 1, Text: "Leer libro"}}, records)
	})

	t.Run("Insert second and update first", func(t *testing.T) {
		rec, err := repo.Insert("Comprar leche")
		require.NoError(t, err)
		assert.Equal(t, int64(2), rec.ID)

		require.NoError(t, repo.Update(1, "Leer dos libros"))

		records, err := repo.ListAll()
		require.NoError(t, err)
		assert.Equal(t, []models.Record{
			{ID: 1, Text: "Leer dos libros"},
			{ID: 2, Text: "Comprar leche"},
		}, records)
	})

	t.Run("Delete first", func(t *testing.T) {
		require.NoError(t, repo.Delete(1))

		records, err := repo.ListAll()
		require.NoError(t, err)
		assert.Equal(t, []models.Record{{ID: 2, Text: "Comprar leche"}}, records)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, repo.Clear())

		records, err := repo.ListAll()
		require.NoError(t, err)
		assert.NotNil(t, records)
		assert.Empty(t, records)
	})

	t.Run("Update missing id on empty store", func(t *testing.T) {
		require.NoError(t, repo.Update(99, "x"))

		records, err := repo.ListAll()
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestRecordProperties(t *testing.T) {
	t.Run("Ids are unique", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		seen := make(map[int64]bool)
		for i := 0; i < 50; i++ {
			rec, err := repo.Insert("nota")
			require.NoError(t, err)
			assert.False(t, seen[rec.ID], "id %d returned twice", rec.ID)
			seen[rec.ID] = true
		}
	})

	t.Run("Read after write returns exactly one new record", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		_, err := repo.Insert("primero")
		require.NoError(t, err)
		before, err := repo.ListAll()
		require.NoError(t, err)

		rec, err := repo.Insert("segundo")
		require.NoError(t, err)

		after, err := repo.ListAll()
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)

		matches := 0
		for _, r := range after {
			if r.ID == rec.ID {
				matches++
				assert.Equal(t, "segundo", r.Text)
			}
		}
		assert.Equal(t, 1, matches)
	})

	t.Run("Update is idempotent", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		rec, err := repo.Insert("original")
		require.NoError(t, err)

		require.NoError(t, repo.Update(rec.ID, "cambiado"))
		once, err := repo.ListAll()
		require.NoError(t, err)

		require.NoError(t, repo.Update(rec.ID, "cambiado"))
		twice, err := repo.ListAll()
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})

	t.Run("Deleted ids are never reused", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		first, err := repo.Insert("a")
		require.NoError(t, err)
		last, err := repo.Insert("b")
		require.NoError(t, err)

		require.NoError(t, repo.Delete(last.ID))
		require.NoError(t, repo.Delete(first.ID))

		next, err := repo.Insert("c")
		require.NoError(t, err)
		assert.Greater(t, next.ID, last.ID)

		records, err := repo.ListAll()
		require.NoError(t, err)
		for _, r := range records {
			assert.NotEqual(t, first.ID, r.ID)
			assert.NotEqual(t, last.ID, r.ID)
		}
	})

	t.Run("Ids keep growing after clear", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		rec, err := repo.Insert("a")
		require.NoError(t, err)
		require.NoError(t, repo.Clear())

		next, err := repo.Insert("b")
		require.NoError(t, err)
		assert.Greater(t, next.ID, rec.ID)
	})

	t.Run("Missing id leaves store unchanged", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		_, err := repo.Insert("uno")
		require.NoError(t, err)
		before, err := repo.ListAll()
		require.NoError(t, err)

		require.NoError(t, repo.Update(404, "nada"))
		require.NoError(t, repo.Delete(404))

		after, err := repo.ListAll()
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Empty text is stored when called directly", func(t *testing.T) {
		repo, _, cleanup := setupTestRepo(t)
		defer cleanup()

		rec, err := repo.Insert("")
		require.NoError(t, err)

		got, err := repo.Get(rec.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "", got.Text)
	})
}

func TestGet(t *testing.T) {
	repo, _, cleanup := setupTestRepo(t)
	defer cleanup()

	rec, err := repo.Insert("Leer libro")
	require.NoError(t, err)

	got, err := repo.Get(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, &rec, got)

	missing, err := repo.Get(rec.ID + 100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStorageErrors(t *testing.T) {
	repo, db, cleanup := setupTestRepo(t)
	defer cleanup()

	require.NoError(t, db.Close())

	tests := []struct {
		name string
		op   func() error
		kind error
	}{
		{
			name: "Insert",
			op: func() error {
				_, err := repo.Insert("x")
				return err
			},
			kind: ErrWrite,
		},
		{
			name: "Update",
			op:   func() error { return repo.Update(1, "x") },
			kind: ErrWrite,
		},
		{
			name: "Delete",
			op:   func() error { return repo.Delete(1) },
			kind: ErrWrite,
		},
		{
			name: "Clear",
			op:   repo.Clear,
			kind: ErrWrite,
		},
		{
			name: "ListAll",
			op: func() error {
				_, err := repo.ListAll()
				return err
			},
			kind: ErrRead,
		},
		{
			name: "Get",
			op: func() error {
				_, err := repo.Get(1)
				return err
			},
			kind: ErrRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.op()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.kind))

			var storageErr *StorageError
			require.True(t, errors.As(err, &storageErr))
			assert.NotNil(t, storageErr.Unwrap())
		})
	}
}
