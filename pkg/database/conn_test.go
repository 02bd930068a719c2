package database

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConn(t *testing.T) *Conn {
	t.Helper()

	db, err := New(&Config{
		Driver:   DriverSQLite,
		FilePath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, db.Exec(`CREATE TABLE notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		parent_id INTEGER,
		score REAL
	)`).Error)

	return NewConn(db, DriverSQLite, zerolog.Nop())
}

func TestConn_InsertAndExecute(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	id, err := conn.Insert(ctx, "INSERT INTO notes (title, parent_id, score) VALUES (?, ?, ?)", "first", nil, 1.5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	id, err = conn.Insert(ctx, "INSERT INTO notes (title, parent_id) VALUES (?, ?)", "second", int64(1))
	require.NoError(t, err)
	assert.Equal(t, int64(2), id)

	rows, err := conn.Execute(ctx, "SELECT id, title, parent_id, score FROM notes ORDER BY id")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, int64(1), rows[0]["id"])
	assert.Equal(t, "first", rows[0]["title"])
	assert.Nil(t, rows[0]["parent_id"])
	assert.Equal(t, 1.5, rows[0]["score"])

	parent, err := rows[1].NullInt64("parent_id")
	require.NoError(t, err)
	require.NotNil(t, parent)
	assert.Equal(t, int64(1), *parent)
}

func TestConn_Accessors(t *testing.T) {
	conn := newTestConn(t)

	assert.Equal(t, DriverSQLite, conn.Driver())
	require.NotNil(t, conn.DB())
	require.NoError(t, conn.DB().Exec("INSERT INTO notes (title) VALUES (?)", "raw").Error)

	rows, err := conn.Execute(context.Background(), `
		SELECT title -- raw insert above
		FROM notes /* single row */
		WHERE title = ?`, "raw")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "raw", rows[0]["title"])
}

func TestConn_ExecuteNoRows(t *testing.T) {
	conn := newTestConn(t)

	rows, err := conn.Execute(context.Background(), "SELECT id FROM notes WHERE id = ?", 42)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestConn_LastInsertedID(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	id, err := conn.Insert(ctx, "INSERT INTO notes (title) VALUES (?)", "a")
	require.NoError(t, err)

	last, err := conn.LastInsertedID(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, last)
}

func TestConn_Exec(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	_, err := conn.Insert(ctx, "INSERT INTO notes (title) VALUES (?)", "a")
	require.NoError(t, err)

	affected, err := conn.Exec(ctx, "UPDATE notes SET title = ? WHERE id = ?", "b", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = conn.Exec(ctx, "UPDATE notes SET title = ? WHERE id = ?", "b", 99)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestConn_PlaceholderMismatch(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	_, err := conn.Execute(ctx, "SELECT id FROM notes WHERE id = ? AND title = ?", 1)
	assert.ErrorIs(t, err, ErrPlaceholderMismatch)

	_, err = conn.Insert(ctx, "INSERT INTO notes (title) VALUES (?)")
	assert.ErrorIs(t, err, ErrPlaceholderMismatch)

	_, err = conn.Exec(ctx, "UPDATE notes SET title = 'x'", "extra")
	assert.ErrorIs(t, err, ErrPlaceholderMismatch)
}

func TestConn_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	_, err := conn.Execute(ctx, "SELECT nope FROM missing_table")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrPlaceholderMismatch))

	_, err = conn.Insert(ctx, "INSERT INTO notes (title) VALUES (?)", nil)
	require.Error(t, err, "NOT NULL constraint must surface")
}

func TestConn_ConcurrentInsertsGetOwnIDs(t *testing.T) {
	ctx := context.Background()
	conn := newTestConn(t)

	const workers = 16
	ids := make([]int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := conn.Insert(ctx, "INSERT INTO notes (title) VALUES (?)", "n")
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, workers)
	for _, id := range ids {
		assert.False(t, seen[id], "id %d handed out twice", id)
		seen[id] = true
	}

	rows, err := conn.Execute(ctx, "SELECT COUNT(*) AS n FROM notes")
	require.NoError(t, err)
	n, err := rows[0].Int64("n")
	require.NoError(t, err)
	assert.Equal(t, int64(workers), n)
}

func TestCheckPlaceholders(t *testing.T) {
	tests := []struct {
		name  string
		query string
		args  int
		ok    bool
	}{
		{"none", "SELECT 1", 0, true},
		{"two", "SELECT * FROM t WHERE a = ? AND b = ?", 2, true},
		{"quoted marks ignored", "SELECT '?' AS q FROM t WHERE a = ?", 1, true},
		{"double quoted ignored", `SELECT "a?b" FROM t`, 0, true},
		{"too few args", "SELECT * FROM t WHERE a = ? AND b = ?", 1, false},
		{"too many args", "SELECT 1", 1, false},
		{"line comment ignored", "SELECT id -- where id = ?\nFROM t WHERE a = ?", 1, true},
		{"trailing line comment ignored", "SELECT id FROM t -- any ?", 0, true},
		{"block comment ignored", "SELECT /* ? and ? */ id FROM t WHERE a = ?", 1, true},
		{"unterminated block comment", "SELECT id FROM t /* ?", 0, true},
		{"minus is not a comment", "SELECT a - ? FROM t", 1, true},
		{"slash is not a comment", "SELECT a / ? FROM t", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPlaceholders(tt.query, make([]any, tt.args))
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrPlaceholderMismatch)
			}
		})
	}
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
