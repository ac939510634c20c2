package component

import (
	"context"
	"math"
	"sort"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/plot"
)

const trendTitle = "Cumulative Events Over Time"

// CumulativeSeries is the running total of positive and negative events,
// one point per input row, ordered by date.
type CumulativeSeries struct {
	Dates    []time.Time
	Positive []float64
	Negative []float64
}

// Len returns the number of points.
func (s CumulativeSeries) Len() int {
	return len(s.Dates)
}

// Cumulative zero-fills missing counts, orders rows by date (stable for equal
// dates) and accumulates each column. rows is not modified.
func Cumulative(rows []domain.EventCount) CumulativeSeries {
	sorted := append([]domain.EventCount(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	s := CumulativeSeries{
		Dates:    make([]time.Time, 0, len(sorted)),
		Positive: make([]float64, 0, len(sorted)),
		Negative: make([]float64, 0, len(sorted)),
	}
	var pos, neg float64
	for _, r := range sorted {
		pos += valueOrZero(r.Positive)
		neg += valueOrZero(r.Negative)
		s.Dates = append(s.Dates, r.Date)
		s.Positive = append(s.Positive, pos)
		s.Negative = append(s.Negative, neg)
	}
	return s
}

func valueOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}

// TrendChart plots cumulative positive and negative events over time.
type TrendChart struct{}

// Visualize implements Visualization.
func (TrendChart) Visualize(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (plot.Figure, error) {
	n, err := requireID(id, "trend chart")
	if err != nil {
		return nil, err
	}
	rows, err := model.EventCounts(ctx, n)
	if err != nil {
		return nil, modelError("event counts for "+model.Name()+" "+id.String(), err)
	}

	s := Cumulative(rows)
	if s.Len() == 0 {
		return plot.Placeholder{Title: trendTitle, Message: "No events recorded"}, nil
	}
	return trendFigure(s), nil
}

func trendFigure(s CumulativeSeries) *plot.ChartFigure {
	first, last := s.Dates[0], s.Dates[len(s.Dates)-1]
	if !last.After(first) {
		// A single day has no extent; widen it so the axis can be drawn.
		first, last = first.AddDate(0, 0, -1), last.AddDate(0, 0, 1)
	}
	maxY := 1.0
	for i := range s.Dates {
		maxY = math.Max(maxY, math.Max(s.Positive[i], s.Negative[i]))
	}

	c := chart.Chart{
		Title: trendTitle,
		XAxis: chart.XAxis{
			Name:           "Event Date",
			ValueFormatter: chart.TimeValueFormatterWithFormat(time.DateOnly),
			Range:          &chart.ContinuousRange{Min: chart.TimeToFloat64(first), Max: chart.TimeToFloat64(last)},
		},
		YAxis: chart.YAxis{
			Name:  "Cumulative Count",
			Range: &chart.ContinuousRange{Min: 0, Max: maxY},
		},
		Series: []chart.Series{
			chart.TimeSeries{Name: "Positive", XValues: s.Dates, YValues: s.Positive},
			chart.TimeSeries{Name: "Negative", XValues: s.Dates, YValues: s.Negative},
		},
	}
	plot.StyleAxes(&c, drawing.ColorBlack, drawing.ColorBlack)
	return &plot.ChartFigure{Chart: c, Legend: true}
}
