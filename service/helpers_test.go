package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ludo-technologies/empdash/internal/classifier"
	"github.com/ludo-technologies/empdash/internal/dashboard"
	"github.com/ludo-technologies/empdash/internal/events"
	"github.com/ludo-technologies/empdash/internal/markup"
	"github.com/ludo-technologies/empdash/internal/plot"
)

func f64(v float64) *float64 { return &v }

func testDate(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func testSource(t *testing.T) *events.FixtureSource {
	t.Helper()
	src, err := events.NewFixtureSource(events.FixtureFile{
		Teams: []events.FixtureTeam{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}},
		Employees: []events.FixtureEmployee{
			{ID: 1, FirstName: "Alice", LastName: "Smith", TeamID: 1},
			{ID: 2, FirstName: "Bob", LastName: "Jones", TeamID: 2},
		},
		Events: []events.FixtureEvent{
			{Date: testDate("2024-01-01"), EmployeeID: 1, Positive: f64(1)},
			{Date: testDate("2024-01-02"), EmployeeID: 1, Positive: f64(2), Negative: f64(1)},
		},
		Notes: []events.FixtureNote{
			{Date: testDate("2024-01-03"), EmployeeID: 1, Note: "<b>great</b> week"},
		},
	})
	require.NoError(t, err)
	return src
}

func testReportService(t *testing.T, prefix string) *ReportService {
	t.Helper()
	report, err := dashboard.New(dashboard.Options{
		ProxyPrefix: prefix,
		Backend:     plot.NewBackend(plot.FormatSVG, 320, 200),
		Classifier:  classifier.Default(),
	})
	require.NoError(t, err)
	return NewReportService(report, markup.Page{
		Stylesheets: []string{"/static/pico.css"},
		Scripts:     []string{"/static/htmx.js"},
	})
}

func testHandler(t *testing.T, prefix string) *Handler {
	t.Helper()
	return NewHandler(HandlerOptions{
		Reports:     testReportService(t, prefix),
		Adapters:    events.NewProvider(testSource(t)),
		Logger:      zerolog.Nop(),
		ProxyPrefix: prefix,
	})
}
