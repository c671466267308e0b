package state

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapjc/internal/testutil"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(testutil.NewTestLogger(t))
	require.NoError(t, OpenAndMigrate(":memory:", store))
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_NotOpened(t *testing.T) {
	store := NewSQLiteStore(nil)
	ctx := context.Background()

	_, err := store.CreateRun(ctx)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, store.CompleteRun(ctx, "x", RunStatusCompleted, Summary{}, ""), ErrNotOpen)
	_, err = store.GetRun(ctx, "x")
	assert.ErrorIs(t, err, ErrNotOpen)
	_, err = store.ListRuns(ctx, 0)
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, store.RecordFile(ctx, FileResult{}, nil), ErrNotOpen)
	_, err = store.LastHash(ctx, "a.java")
	assert.ErrorIs(t, err, ErrNotOpen)
	assert.ErrorIs(t, store.Migrate(), ErrNotOpen)
	assert.NoError(t, store.Close())
}

func TestSQLiteStore_Migrate(t *testing.T) {
	store := setupTestStore(t)

	v, err := store.MigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	// Re-running is a no-op.
	require.NoError(t, store.Migrate())
}

func TestSQLiteStore_RunLifecycle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run, err := store.CreateRun(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, RunStatusRunning, run.Status)

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusRunning, got.Status)
	assert.Nil(t, got.CompletedAt)

	require.NoError(t, store.CompleteRun(ctx, run.ID, RunStatusFailed,
		Summary{Files: 2, Tokens: 40, Errors: 1}, "boom"))

	got, err = store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, RunStatusFailed, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, 2, got.Files)
	assert.Equal(t, 40, got.Tokens)
	assert.Equal(t, 1, got.Errors)
	assert.Equal(t, "boom", got.Error)
}

func TestSQLiteStore_RunNotFound(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.GetRun(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)

	err = store.CompleteRun(ctx, "missing", RunStatusCompleted, Summary{}, "")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestSQLiteStore_ListRuns(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	var ids []string
	for range 3 {
		run, err := store.CreateRun(ctx)
		require.NoError(t, err)
		ids = append(ids, run.ID)
		time.Sleep(time.Millisecond)
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{ids[2], ids[1], ids[0]}},
		{"limited", 2, []string{ids[2], ids[1]}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := store.ListRuns(ctx, tt.limit)
			require.NoError(t, err)
			var got []string
			for _, r := range runs {
				got = append(got, r.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSQLiteStore_RecordFile(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	run, err := store.CreateRun(ctx)
	require.NoError(t, err)

	clean := FileResult{RunID: run.ID, Path: "A.java", Hash: "h1", Tokens: 10, Names: 3, Duration: 1500 * time.Microsecond}
	broken := FileResult{RunID: run.ID, Path: "B.java", Hash: "h2", Tokens: 4, Errors: 1}
	diags := []Diagnostic{
		{Path: "B.java", Pos: 7, Line: 1, Column: 8, Key: "compiler.err.unclosed.str.lit", Severity: "error", Message: "unclosed string literal"},
	}

	require.NoError(t, store.RecordFile(ctx, clean, nil))
	require.NoError(t, store.RecordFile(ctx, broken, diags))

	files, err := store.FileResults(ctx, run.ID)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, clean, files[0])
	assert.Equal(t, "B.java", files[1].Path)

	got, err := store.Diagnostics(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, diags, got)

	t.Run("last hash ignores files with errors", func(t *testing.T) {
		h, err := store.LastHash(ctx, "A.java")
		require.NoError(t, err)
		assert.Equal(t, "h1", h)

		h, err = store.LastHash(ctx, "B.java")
		require.NoError(t, err)
		assert.Empty(t, h)

		h, err = store.LastHash(ctx, "C.java")
		require.NoError(t, err)
		assert.Empty(t, h)
	})

	t.Run("unknown run violates foreign key", func(t *testing.T) {
		err := store.RecordFile(ctx, FileResult{RunID: "nope", Path: "C.java"}, nil)
		assert.Error(t, err)
	})
}

func TestSQLiteStore_Mocked(t *testing.T) {
	ctx := context.Background()

	t.Run("create run error is wrapped", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO runs").WillReturnError(errors.New("disk full"))

		store := NewSQLiteStoreWithDB(db, testutil.NewTestLogger(t))
		_, err = store.CreateRun(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create run")
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("diagnostic failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO file_results").WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO diagnostics").WillReturnError(errors.New("constraint"))
		mock.ExpectRollback()

		store := NewSQLiteStoreWithDB(db, testutil.NewTestLogger(t))
		err = store.RecordFile(ctx,
			FileResult{RunID: "r", Path: "A.java"},
			[]Diagnostic{{Path: "A.java", Key: "k", Severity: "error"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record diagnostic for A.java")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("complete run with no rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("UPDATE runs SET").WillReturnResult(sqlmock.NewResult(0, 0))

		store := NewSQLiteStoreWithDB(db, testutil.NewTestLogger(t))
		err = store.CompleteRun(ctx, "r", RunStatusCancelled, Summary{}, "")
		assert.ErrorIs(t, err, ErrRunNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
