// Package events provides the Employee and Team model adapters over an
// employee-events data source.
package events

import (
	"context"

	"github.com/ludo-technologies/empdash/domain"
)

// Scope selects whose rows a query aggregates.
type Scope string

const (
	ScopeEmployee Scope = "employee"
	ScopeTeam     Scope = "team"
)

// key is the column identifying the scope in the events and notes tables.
func (s Scope) key() string {
	return string(s) + "_id"
}

// FeatureColumns are the classifier inputs produced by ModelData.
var FeatureColumns = []string{"positive_events", "negative_events"}

// Totals is one employee's summed event counts.
type Totals struct {
	EmployeeID int64
	Positive   float64
	Negative   float64
}

// Source answers the queries behind both adapters. Entity-keyed methods
// return domain.ErrNotFound when id does not exist in scope.
type Source interface {
	// EmployeeOptions lists employees as (full name, id).
	EmployeeOptions(ctx context.Context) ([]domain.UserOption, error)

	// TeamOptions lists teams as (team name, id).
	TeamOptions(ctx context.Context) ([]domain.UserOption, error)

	// DailyEvents sums events per day for the scope.
	DailyEvents(ctx context.Context, scope Scope, id int64) ([]domain.EventCount, error)

	// MemberTotals sums events per employee in the scope, ordered by employee id.
	MemberTotals(ctx context.Context, scope Scope, id int64) ([]Totals, error)

	// Notes lists the notes recorded for the scope.
	Notes(ctx context.Context, scope Scope, id int64) ([]domain.Note, error)
}

// queryBase holds the queries shared by both adapters.
type queryBase struct {
	scope Scope
	src   Source
}

// Name implements domain.ModelAdapter.
func (q queryBase) Name() string {
	return string(q.scope)
}

// EventCounts implements domain.ModelAdapter.
func (q queryBase) EventCounts(ctx context.Context, id int64) ([]domain.EventCount, error) {
	return q.src.DailyEvents(ctx, q.scope, id)
}

// Notes implements domain.ModelAdapter.
func (q queryBase) Notes(ctx context.Context, id int64) ([]domain.Note, error) {
	return q.src.Notes(ctx, q.scope, id)
}

// ModelData implements domain.ModelAdapter: one feature row per employee in scope.
func (q queryBase) ModelData(ctx context.Context, id int64) (domain.FeatureTable, error) {
	totals, err := q.src.MemberTotals(ctx, q.scope, id)
	if err != nil {
		return domain.FeatureTable{}, err
	}
	table := domain.FeatureTable{
		Columns: append([]string(nil), FeatureColumns...),
		Rows:    make([][]float64, 0, len(totals)),
	}
	for _, t := range totals {
		table.Rows = append(table.Rows, []float64{t.Positive, t.Negative})
	}
	return table, nil
}

// Employee is the adapter for a single employee's report.
type Employee struct {
	queryBase
}

// NewEmployee creates an employee adapter.
func NewEmployee(src Source) *Employee {
	return &Employee{queryBase{scope: ScopeEmployee, src: src}}
}

// UserOptions implements domain.ModelAdapter.
func (e *Employee) UserOptions(ctx context.Context) ([]domain.UserOption, error) {
	return e.src.EmployeeOptions(ctx)
}

// Team is the adapter for a team report, aggregating over its members.
type Team struct {
	queryBase
}

// NewTeam creates a team adapter.
func NewTeam(src Source) *Team {
	return &Team{queryBase{scope: ScopeTeam, src: src}}
}

// UserOptions implements domain.ModelAdapter.
func (t *Team) UserOptions(ctx context.Context) ([]domain.UserOption, error) {
	return t.src.TeamOptions(ctx)
}

// Provider resolves adapters by profile type over one source.
type Provider struct {
	employee *Employee
	team     *Team
}

// NewProvider creates a provider. Adapters are stateless and reused.
func NewProvider(src Source) *Provider {
	return &Provider{employee: NewEmployee(src), team: NewTeam(src)}
}

// Adapter implements domain.AdapterProvider.
func (p *Provider) Adapter(profile domain.ProfileType) (domain.ModelAdapter, error) {
	switch profile {
	case domain.ProfileEmployee:
		return p.employee, nil
	case domain.ProfileTeam:
		return p.team, nil
	default:
		return nil, domain.NewInvalidInputError("unknown profile type: "+string(profile), nil)
	}
}
