package component

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"
	"golang.org/x/net/html"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/plot"
)

// fakeModel is an in-memory adapter keyed by entity id.
type fakeModel struct {
	name     string
	options  []domain.UserOption
	events   map[int64][]domain.EventCount
	features map[int64]domain.FeatureTable
	notes    map[int64][]domain.Note
}

func (f *fakeModel) Name() string { return f.name }

func (f *fakeModel) UserOptions(context.Context) ([]domain.UserOption, error) {
	return f.options, nil
}

func (f *fakeModel) EventCounts(_ context.Context, id int64) ([]domain.EventCount, error) {
	rows, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rows, nil
}

func (f *fakeModel) ModelData(_ context.Context, id int64) (domain.FeatureTable, error) {
	t, ok := f.features[id]
	if !ok {
		return domain.FeatureTable{}, domain.ErrNotFound
	}
	return t, nil
}

func (f *fakeModel) Notes(_ context.Context, id int64) ([]domain.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return n, nil
}

// mockModel is a testify mock adapter for error paths.
type mockModel struct {
	mock.Mock
}

func (m *mockModel) Name() string {
	return m.Called().String(0)
}

func (m *mockModel) UserOptions(ctx context.Context) ([]domain.UserOption, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserOption), args.Error(1)
}

func (m *mockModel) EventCounts(ctx context.Context, id int64) ([]domain.EventCount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventCount), args.Error(1)
}

func (m *mockModel) ModelData(ctx context.Context, id int64) (domain.FeatureTable, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.FeatureTable), args.Error(1)
}

func (m *mockModel) Notes(ctx context.Context, id int64) ([]domain.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Note), args.Error(1)
}

// stubClassifier returns fixed probabilities regardless of input.
type stubClassifier struct {
	proba [][2]float64
	err   error
	calls int
}

func (s *stubClassifier) PredictProba(domain.FeatureTable) ([][2]float64, error) {
	s.calls++
	return s.proba, s.err
}

func f64(v float64) *float64 { return &v }

func testBackend() plot.Backend {
	return plot.NewBackend(plot.FormatSVG, 320, 200)
}

// find returns the first element with the given tag in n's subtree.
func find(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every element with the given tag in n's subtree.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func hasAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
