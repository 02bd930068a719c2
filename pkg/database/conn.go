package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrPlaceholderMismatch is returned when the number of bound arguments does not
// match the number of ? placeholders in a statement.
var ErrPlaceholderMismatch = errors.New("placeholder count does not match argument count")

// Conn runs parameterized SQL against one store and returns rows keyed by column
// name. It is created once by the caller and shared by every repository.
type Conn struct {
	db     *gorm.DB
	driver string
	logger zerolog.Logger

	// mu makes INSERT followed by the last-id read one operation.
	mu sync.Mutex
}

// NewConn wraps an open GORM handle.
func NewConn(db *gorm.DB, driver string, logger zerolog.Logger) *Conn {
	return &Conn{
		db:     db,
		driver: driver,
		logger: logger.With().Str("component", "conn").Logger(),
	}
}

// DB returns the underlying GORM handle.
func (c *Conn) DB() *gorm.DB {
	return c.db
}

// Driver returns the driver name the connection was opened with.
func (c *Conn) Driver() string {
	return c.driver
}

// Execute runs a query and returns every result row.
func (c *Conn) Execute(ctx context.Context, query string, args ...any) ([]Row, error) {
	if err := checkPlaceholders(query, args); err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := c.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		c.logFailure(query, err)
		return nil, err
	}
	defer rows.Close()

	out, err := scanRows(rows)
	if err != nil {
		c.logFailure(query, err)
		return nil, err
	}

	c.logger.Debug().
		Str("sql", compact(query)).
		Int("args", len(args)).
		Int("rows", len(out)).
		Dur("took", time.Since(start)).
		Msg("query")
	return out, nil
}

// Exec runs a statement that returns no rows and reports the affected row count.
func (c *Conn) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	if err := checkPlaceholders(query, args); err != nil {
		return 0, err
	}

	start := time.Now()
	result := c.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		c.logFailure(query, result.Error)
		return 0, result.Error
	}

	c.logger.Debug().
		Str("sql", compact(query)).
		Int("args", len(args)).
		Int64("affected", result.RowsAffected).
		Dur("took", time.Since(start)).
		Msg("exec")
	return result.RowsAffected, nil
}

// Insert runs an INSERT and returns the id the store generated for it. The
// statement and the id read share one pinned session and hold mu, so no other
// caller's insert can land in between.
func (c *Conn) Insert(ctx context.Context, query string, args ...any) (int64, error) {
	if err := checkPlaceholders(query, args); err != nil {
		return 0, err
	}
	idQuery, err := lastInsertIDQuery(c.driver)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	start := time.Now()
	var id int64
	err = c.db.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		if err := tx.Exec(query, args...).Error; err != nil {
			return err
		}
		return tx.Raw(idQuery).Row().Scan(&id)
	})
	if err != nil {
		c.logFailure(query, err)
		return 0, err
	}

	c.logger.Debug().
		Str("sql", compact(query)).
		Int("args", len(args)).
		Int64("id", id).
		Dur("took", time.Since(start)).
		Msg("insert")
	return id, nil
}

// LastInsertedID reads the id generated by the most recent INSERT on the
// store's session. Callers that need the id of their own insert should use
// Insert instead.
func (c *Conn) LastInsertedID(ctx context.Context) (int64, error) {
	idQuery, err := lastInsertIDQuery(c.driver)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var id sql.NullInt64
	if err := c.db.WithContext(ctx).Raw(idQuery).Row().Scan(&id); err != nil {
		return 0, err
	}
	return id.Int64, nil
}

func (c *Conn) logFailure(query string, err error) {
	c.logger.Warn().Err(err).Str("sql", compact(query)).Msg("statement failed")
}

func scanRows(rows *sql.Rows) ([]Row, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := make([]Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		row := make(Row, len(cols))
		for i, col := range cols {
			row[col] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// checkPlaceholders counts ? markers outside quoted literals, -- line
// comments and /* */ block comments.
func checkPlaceholders(query string, args []any) error {
	n := 0
	for i := 0; i < len(query); i++ {
		switch c := query[i]; {
		case c == '\'' || c == '"':
			end := strings.IndexByte(query[i+1:], c)
			if end < 0 {
				i = len(query)
			} else {
				i += end + 1
			}
		case c == '-' && strings.HasPrefix(query[i:], "--"):
			end := strings.IndexByte(query[i:], '\n')
			if end < 0 {
				i = len(query)
			} else {
				i += end
			}
		case c == '/' && strings.HasPrefix(query[i:], "/*"):
			end := strings.Index(query[i+2:], "*/")
			if end < 0 {
				i = len(query)
			} else {
				i += end + 3
			}
		case c == '?':
			n++
		}
	}
	if n != len(args) {
		return fmt.Errorf("%w: %d placeholders, %d args", ErrPlaceholderMismatch, n, len(args))
	}
	return nil
}

func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
