package domain

import (
	"errors"

	"github.com/weiawesome/qa-service/pkg/database"
)

// ErrInvalidRow is returned when a row cannot be decoded into an entity.
var ErrInvalidRow = errors.New("invalid row")

// decodeAll maps every row with decode. It never returns a nil slice on success.
func decodeAll[T any](rows []database.Row, decode func(database.Row) (*T, error)) ([]T, error) {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		v, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, nil
}
