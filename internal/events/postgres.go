package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ludo-technologies/empdash/domain"
)

// Querier is the subset of pgxpool.Pool used by PostgresSource.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// PostgresSource queries the employee_events schema (employee, team,
// employee_events and notes tables).
type PostgresSource struct {
	db Querier
}

// NewPostgresSource creates a source over an open pool or connection.
func NewPostgresSource(db Querier) *PostgresSource {
	return &PostgresSource{db: db}
}

// OpenPostgres connects a pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

const (
	employeeOptionsSQL = `SELECT first_name || ' ' || last_name, employee_id::text
FROM employee ORDER BY employee_id`

	teamOptionsSQL = `SELECT team_name, team_id::text FROM team ORDER BY team_id`

	employeeExistsSQL = `SELECT EXISTS (SELECT 1 FROM employee WHERE employee_id = $1)`
	teamExistsSQL     = `SELECT EXISTS (SELECT 1 FROM team WHERE team_id = $1)`

	// %s is the scope key column.
	dailyEventsSQL = `SELECT event_date,
       SUM(positive_events)::float8,
       SUM(negative_events)::float8
FROM employee_events
WHERE %s = $1
GROUP BY event_date
ORDER BY event_date`

	memberTotalsSQL = `SELECT e.employee_id,
       COALESCE(SUM(ee.positive_events), 0)::float8,
       COALESCE(SUM(ee.negative_events), 0)::float8
FROM employee e
LEFT JOIN employee_events ee ON ee.employee_id = e.employee_id
WHERE e.%s = $1
GROUP BY e.employee_id
ORDER BY e.employee_id`

	notesSQL = `SELECT note_date, note FROM notes WHERE %s = $1 ORDER BY note_date`
)

// EmployeeOptions implements Source.
func (s *PostgresSource) EmployeeOptions(ctx context.Context) ([]domain.UserOption, error) {
	return s.options(ctx, employeeOptionsSQL)
}

// TeamOptions implements Source.
func (s *PostgresSource) TeamOptions(ctx context.Context) ([]domain.UserOption, error) {
	return s.options(ctx, teamOptionsSQL)
}

func (s *PostgresSource) options(ctx context.Context, sql string) ([]domain.UserOption, error) {
	rows, err := s.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("options query failed: %w", err)
	}
	opts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.UserOption, error) {
		var o domain.UserOption
		err := row.Scan(&o.Label, &o.Value)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("options scan failed: %w", err)
	}
	return opts, nil
}

// DailyEvents implements Source.
func (s *PostgresSource) DailyEvents(ctx context.Context, scope Scope, id int64) ([]domain.EventCount, error) {
	if err := s.check(ctx, scope, id); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, fmt.Sprintf(dailyEventsSQL, scope.key()), id)
	if err != nil {
		return nil, fmt.Errorf("event query failed: %w", err)
	}
	counts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.EventCount, error) {
		var c domain.EventCount
		err := row.Scan(&c.Date, &c.Positive, &c.Negative)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("event scan failed: %w", err)
	}
	return counts, nil
}

// MemberTotals implements Source.
func (s *PostgresSource) MemberTotals(ctx context.Context, scope Scope, id int64) ([]Totals, error) {
	if err := s.check(ctx, scope, id); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, fmt.Sprintf(memberTotalsSQL, scope.key()), id)
	if err != nil {
		return nil, fmt.Errorf("totals query failed: %w", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Totals, error) {
		var t Totals
		err := row.Scan(&t.EmployeeID, &t.Positive, &t.Negative)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("totals scan failed: %w", err)
	}
	return totals, nil
}

// Notes implements Source.
func (s *PostgresSource) Notes(ctx context.Context, scope Scope, id int64) ([]domain.Note, error) {
	if err := s.check(ctx, scope, id); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, fmt.Sprintf(notesSQL, scope.key()), id)
	if err != nil {
		return nil, fmt.Errorf("notes query failed: %w", err)
	}
	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		var n domain.Note
		err := row.Scan(&n.Date, &n.Text)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("notes scan failed: %w", err)
	}
	return notes, nil
}

func (s *PostgresSource) check(ctx context.Context, scope Scope, id int64) error {
	var sql string
	switch scope {
	case ScopeEmployee:
		sql = employeeExistsSQL
	case ScopeTeam:
		sql = teamExistsSQL
	default:
		return fmt.Errorf("unknown scope %q", scope)
	}
	var exists bool
	if err := s.db.QueryRow(ctx, sql, id).Scan(&exists); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			return fmt.Errorf("lookup of %s %d failed (%s): %w", scope, id, pgErr.Code, err)
		}
		return fmt.Errorf("lookup of %s %d failed: %w", scope, id, err)
	}
	if !exists {
		return fmt.Errorf("%s %d: %w", scope, id, domain.ErrNotFound)
	}
	return nil
}
