package events

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/empdash/domain"
)

type existsRow struct {
	exists bool
	err    error
}

func (r existsRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*bool)) = r.exists
	return nil
}

type fakeQuerier struct {
	row      existsRow
	queryErr error
	queries  []string
}

func (f *fakeQuerier) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sql)
	return nil, f.queryErr
}

func (f *fakeQuerier) QueryRow(_ context.Context, sql string, _ ...any) pgx.Row {
	f.queries = append(f.queries, sql)
	return f.row
}

func TestPostgresSource_UnknownEntity(t *testing.T) {
	db := &fakeQuerier{row: existsRow{exists: false}}
	src := NewPostgresSource(db)

	_, err := src.DailyEvents(context.Background(), ScopeTeam, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	require.Len(t, db.queries, 1)
	assert.Equal(t, teamExistsSQL, db.queries[0])
}

func TestPostgresSource_LookupFailure(t *testing.T) {
	boom := errors.New("connection reset")
	src := NewPostgresSource(&fakeQuerier{row: existsRow{err: boom}})

	_, err := src.Notes(context.Background(), ScopeEmployee, 1)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresSource_QueryUsesScopeKey(t *testing.T) {
	boom := errors.New("relation does not exist")
	db := &fakeQuerier{row: existsRow{exists: true}, queryErr: boom}
	src := NewPostgresSource(db)

	_, err := src.MemberTotals(context.Background(), ScopeTeam, 1)
	assert.ErrorIs(t, err, boom)
	require.Len(t, db.queries, 2)
	assert.Contains(t, db.queries[1], "WHERE e.team_id = $1")

	_, err = src.EmployeeOptions(context.Background())
	assert.ErrorIs(t, err, boom)
}
