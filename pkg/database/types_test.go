package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRow_Int64(t *testing.T) {
	r := Row{"a": int64(7), "b": "12", "c": nil, "d": "x", "e": 3.0, "f": 3.5}

	v, err := r.Int64("a")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	v, err = r.Int64("b")
	require.NoError(t, err)
	assert.Equal(t, int64(12), v)

	v, err = r.Int64("e")
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)

	_, err = r.Int64("c")
	assert.ErrorIs(t, err, ErrNullColumn)

	_, err = r.Int64("missing")
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = r.Int64("d")
	assert.ErrorIs(t, err, ErrColumnType)

	_, err = r.Int64("f")
	assert.ErrorIs(t, err, ErrColumnType)
}

func TestRow_Optional(t *testing.T) {
	r := Row{"n": nil, "s": "hi", "i": int64(4), "f": "2.5"}

	v, err := r.OptInt64("n")
	require.NoError(t, err)
	assert.Zero(t, v)

	p, err := r.NullInt64("missing")
	require.NoError(t, err)
	assert.Nil(t, p)

	s, err := r.OptString("s")
	require.NoError(t, err)
	assert.Equal(t, "hi", s)

	s, err = r.OptString("missing")
	require.NoError(t, err)
	assert.Empty(t, s)

	f, err := r.OptFloat64("i")
	require.NoError(t, err)
	assert.Equal(t, 4.0, f)

	f, err = r.OptFloat64("f")
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = Row{"b": []int{1}}.OptString("b")
	assert.ErrorIs(t, err, ErrColumnType)
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "abc", normalizeValue([]byte("abc")))
	assert.Equal(t, int64(5), normalizeValue(int32(5)))
	assert.Equal(t, int64(1), normalizeValue(true))
	assert.Equal(t, float64(float32(1.25)), normalizeValue(float32(1.25)))
	assert.Nil(t, normalizeValue(nil))
}
