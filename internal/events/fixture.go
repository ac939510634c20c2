package events

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/empdash/domain"
)

// FixtureFile is the YAML layout of a dataset file.
type FixtureFile struct {
	Teams     []FixtureTeam     `yaml:"teams"`
	Employees []FixtureEmployee `yaml:"employees"`
	Events    []FixtureEvent    `yaml:"events"`
	Notes     []FixtureNote     `yaml:"notes"`
}

// FixtureTeam is a row of the team table.
type FixtureTeam struct {
	ID      int64  `yaml:"id"`
	Name    string `yaml:"name"`
	Shift   string `yaml:"shift,omitempty"`
	Manager string `yaml:"manager,omitempty"`
}

// FixtureEmployee is a row of the employee table.
type FixtureEmployee struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	TeamID    int64  `yaml:"team_id"`
}

// FixtureEvent is one day of events for an employee. A null count is a
// day without events of that polarity.
type FixtureEvent struct {
	Date       time.Time `yaml:"date"`
	EmployeeID int64     `yaml:"employee_id"`
	Positive   *float64  `yaml:"positive"`
	Negative   *float64  `yaml:"negative"`
}

// FixtureNote is a note on an employee; it also belongs to the employee's team.
type FixtureNote struct {
	Date       time.Time `yaml:"date"`
	EmployeeID int64     `yaml:"employee_id"`
	Note       string    `yaml:"note"`
}

// FixtureSource is an in-memory Source loaded from YAML. It is read-only
// after loading and safe for concurrent use.
type FixtureSource struct {
	teams     []FixtureTeam
	employees []FixtureEmployee
	events    []FixtureEvent
	notes     []FixtureNote

	employeeTeam map[int64]int64
	teamIDs      map[int64]bool
}

// NewFixtureSource indexes an already decoded dataset.
func NewFixtureSource(files ...FixtureFile) (*FixtureSource, error) {
	s := &FixtureSource{
		employeeTeam: make(map[int64]int64),
		teamIDs:      make(map[int64]bool),
	}
	for _, f := range files {
		s.teams = append(s.teams, f.Teams...)
		s.employees = append(s.employees, f.Employees...)
		s.events = append(s.events, f.Events...)
		s.notes = append(s.notes, f.Notes...)
	}

	for _, t := range s.teams {
		if s.teamIDs[t.ID] {
			return nil, fmt.Errorf("duplicate team id %d", t.ID)
		}
		s.teamIDs[t.ID] = true
	}
	for _, e := range s.employees {
		if _, dup := s.employeeTeam[e.ID]; dup {
			return nil, fmt.Errorf("duplicate employee id %d", e.ID)
		}
		if !s.teamIDs[e.TeamID] {
			return nil, fmt.Errorf("employee %d references unknown team %d", e.ID, e.TeamID)
		}
		s.employeeTeam[e.ID] = e.TeamID
	}
	for i, ev := range s.events {
		if _, ok := s.employeeTeam[ev.EmployeeID]; !ok {
			return nil, fmt.Errorf("event %d references unknown employee %d", i, ev.EmployeeID)
		}
	}
	for i, n := range s.notes {
		if _, ok := s.employeeTeam[n.EmployeeID]; !ok {
			return nil, fmt.Errorf("note %d references unknown employee %d", i, n.EmployeeID)
		}
	}
	return s, nil
}

// LoadFixtures reads every YAML file matching the given doublestar patterns
// (e.g. "data/**/*.yaml") and merges them in path order.
func LoadFixtures(patterns ...string) (*FixtureSource, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		matches, err := doublestar.FilepathGlob(p)
		if err != nil {
			return nil, fmt.Errorf("invalid fixture pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no fixture files match %v", patterns)
	}
	sort.Strings(paths)

	files := make([]FixtureFile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
		}
		var f FixtureFile
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
		}
		files = append(files, f)
	}
	return NewFixtureSource(files...)
}

// EmployeeOptions implements Source.
func (s *FixtureSource) EmployeeOptions(context.Context) ([]domain.UserOption, error) {
	opts := make([]domain.UserOption, 0, len(s.employees))
	for _, e := range s.employees {
		opts = append(opts, domain.UserOption{
			Label: e.FirstName + " " + e.LastName,
			Value: strconv.FormatInt(e.ID, 10),
		})
	}
	return opts, nil
}

// TeamOptions implements Source.
func (s *FixtureSource) TeamOptions(context.Context) ([]domain.UserOption, error) {
	opts := make([]domain.UserOption, 0, len(s.teams))
	for _, t := range s.teams {
		opts = append(opts, domain.UserOption{Label: t.Name, Value: strconv.FormatInt(t.ID, 10)})
	}
	return opts, nil
}

// DailyEvents implements Source.
func (s *FixtureSource) DailyEvents(_ context.Context, scope Scope, id int64) ([]domain.EventCount, error) {
	if err := s.check(scope, id); err != nil {
		return nil, err
	}
	byDay := make(map[time.Time]*domain.EventCount)
	var days []time.Time
	for _, ev := range s.events {
		if !s.inScope(scope, id, ev.EmployeeID) {
			continue
		}
		d := ev.Date.UTC().Truncate(24 * time.Hour)
		row, ok := byDay[d]
		if !ok {
			row = &domain.EventCount{Date: d}
			byDay[d] = row
			days = append(days, d)
		}
		row.Positive = addNullable(row.Positive, ev.Positive)
		row.Negative = addNullable(row.Negative, ev.Negative)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]domain.EventCount, 0, len(days))
	for _, d := range days {
		out = append(out, *byDay[d])
	}
	return out, nil
}

// MemberTotals implements Source.
func (s *FixtureSource) MemberTotals(_ context.Context, scope Scope, id int64) ([]Totals, error) {
	if err := s.check(scope, id); err != nil {
		return nil, err
	}
	var members []int64
	for _, e := range s.employees {
		if s.inScope(scope, id, e.ID) {
			members = append(members, e.ID)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

	totals := make([]Totals, 0, len(members))
	for _, m := range members {
		t := Totals{EmployeeID: m}
		for _, ev := range s.events {
			if ev.EmployeeID != m {
				continue
			}
			t.Positive += valueOf(ev.Positive)
			t.Negative += valueOf(ev.Negative)
		}
		totals = append(totals, t)
	}
	return totals, nil
}

// Notes implements Source.
func (s *FixtureSource) Notes(_ context.Context, scope Scope, id int64) ([]domain.Note, error) {
	if err := s.check(scope, id); err != nil {
		return nil, err
	}
	out := []domain.Note{}
	for _, n := range s.notes {
		if s.inScope(scope, id, n.EmployeeID) {
			out = append(out, domain.Note{Date: n.Date, Text: n.Note})
		}
	}
	return out, nil
}

func (s *FixtureSource) check(scope Scope, id int64) error {
	var ok bool
	switch scope {
	case ScopeEmployee:
		_, ok = s.employeeTeam[id]
	case ScopeTeam:
		ok = s.teamIDs[id]
	default:
		return fmt.Errorf("unknown scope %q", scope)
	}
	if !ok {
		return fmt.Errorf("%s %d: %w", scope, id, domain.ErrNotFound)
	}
	return nil
}

func (s *FixtureSource) inScope(scope Scope, id, employeeID int64) bool {
	if scope == ScopeEmployee {
		return employeeID == id
	}
	return s.employeeTeam[employeeID] == id
}

// addNullable sums like SQL SUM: null only while every input is null.
func addNullable(acc, v *float64) *float64 {
	if v == nil {
		return acc
	}
	sum := *v
	if acc != nil {
		sum += *acc
	}
	return &sum
}

func valueOf(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
