package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Model names reported by ModelAdapter.Name
const (
	ModelNameEmployee = "employee"
	ModelNameTeam     = "team"
)

// ProfileType is the discriminator the filter form submits ("Employee" or "Team")
type ProfileType string

const (
	ProfileEmployee ProfileType = "Employee"
	ProfileTeam     ProfileType = "Team"
)

// Profiles lists the supported profile types in display order.
var Profiles = []ProfileType{ProfileEmployee, ProfileTeam}

// ParseProfileType accepts "Employee"/"Team" in any case.
func ParseProfileType(raw string) (ProfileType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ModelNameEmployee:
		return ProfileEmployee, nil
	case ModelNameTeam:
		return ProfileTeam, nil
	default:
		return "", NewInvalidInputError(fmt.Sprintf("unknown profile type %q", raw), nil)
	}
}

// Path returns the route segment for the profile ("employee" or "team").
func (p ProfileType) Path() string {
	return strings.ToLower(string(p))
}

// UserOption is a selectable entity as data sources return it: label first.
type UserOption struct {
	Label string
	Value string
}

// Option is a selector entry: the stable identifier first, display text second.
type Option struct {
	Value string
	Label string
}

// EventCount is one day of recorded events. A nil count means no events were
// recorded for that polarity on that day.
type EventCount struct {
	Date     time.Time
	Positive *float64
	Negative *float64
}

// FeatureTable is the classifier input: one row per employee in scope.
type FeatureTable struct {
	Columns []string
	Rows    [][]float64
}

// Len returns the number of rows.
func (f FeatureTable) Len() int {
	return len(f.Rows)
}

// NoteColumns are the column headings of a Note row.
var NoteColumns = []string{"note_date", "note"}

// Note is a manager note attached to an employee or a team.
type Note struct {
	Date time.Time
	Text string
}

// Cells returns the note's values in NoteColumns order.
func (n Note) Cells() []string {
	return []string{n.Date.Format(time.DateOnly), n.Text}
}

// ModelAdapter is the data-access capability set every report is built against.
// Employee and Team are the two implementations; components never switch on the
// concrete type.
type ModelAdapter interface {
	// Name is "employee" or "team".
	Name() string

	// UserOptions lists every selectable entity as (label, value) pairs.
	UserOptions(ctx context.Context) ([]UserOption, error)

	// EventCounts returns daily positive/negative event totals for the entity.
	EventCounts(ctx context.Context, id int64) ([]EventCount, error)

	// ModelData returns classifier features: one row for an employee, one row
	// per member for a team.
	ModelData(ctx context.Context, id int64) (FeatureTable, error)

	// Notes returns the entity's notes in source order.
	Notes(ctx context.Context, id int64) ([]Note, error)
}

// Classifier is a trained binary classifier.
// Implementations must be safe for concurrent PredictProba calls.
type Classifier interface {
	// PredictProba returns [negative, positive] class probabilities per row.
	PredictProba(features FeatureTable) ([][2]float64, error)
}
