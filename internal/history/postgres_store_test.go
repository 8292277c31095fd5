package history

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	value string
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*string)) = r.value
	return nil
}

type fakePG struct {
	rows     map[string]string
	lastSQL  string
	lastArgs []any
}

func (f *fakePG) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.lastSQL, f.lastArgs = sql, args
	v, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{value: v}
}

func (f *fakePG) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.lastSQL, f.lastArgs = sql, args
	key := args[0].(string)
	if len(args) == 2 {
		f.rows[key] = args[1].(string)
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	}
	delete(f.rows, key)
	return pgconn.NewCommandTag("DELETE 1"), nil
}

func TestPostgresStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := &fakePG{rows: map[string]string{}}
	store := NewPostgresStore(fake)

	_, ok, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok, "no rows means absent")

	require.NoError(t, store.Save(ctx, "abc", `["x"]`))
	assert.Contains(t, fake.lastSQL, "ON CONFLICT (key)")
	assert.Equal(t, `["x"]`, fake.rows["factHistory:abc"])

	v, ok, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["x"]`, v)

	require.NoError(t, store.Delete(ctx, "abc"))
	assert.Empty(t, fake.rows)
}
