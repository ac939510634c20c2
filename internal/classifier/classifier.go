// Package classifier loads the recruitment-risk model used by the risk chart.
package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/empdash/domain"
)

// Spec is the on-disk form of a logistic regression model.
type Spec struct {
	Features     []string  `yaml:"features,omitempty" json:"features,omitempty"`
	Coefficients []float64 `yaml:"coefficients" json:"coefficients"`
	Intercept    float64   `yaml:"intercept" json:"intercept"`
}

// Logistic is a binary logistic regression. It is immutable after
// construction and safe to share across goroutines.
type Logistic struct {
	features     []string
	coefficients []float64
	intercept    float64
}

// New validates spec and builds a model from a copy of it.
func New(spec Spec) (*Logistic, error) {
	if len(spec.Coefficients) == 0 {
		return nil, errors.New("model has no coefficients")
	}
	if len(spec.Features) > 0 && len(spec.Features) != len(spec.Coefficients) {
		return nil, fmt.Errorf("model has %d features but %d coefficients",
			len(spec.Features), len(spec.Coefficients))
	}
	for i, c := range spec.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	if math.IsNaN(spec.Intercept) || math.IsInf(spec.Intercept, 0) {
		return nil, errors.New("intercept is not finite")
	}
	return &Logistic{
		features:     append([]string(nil), spec.Features...),
		coefficients: append([]float64(nil), spec.Coefficients...),
		intercept:    spec.Intercept,
	}, nil
}

// Load reads a model file. ".json" files are decoded as JSON, everything
// else as YAML.
func Load(path string) (*Logistic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to read model file %s", path), err)
	}

	var spec Spec
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &spec)
	} else {
		err = yaml.Unmarshal(data, &spec)
	}
	if err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("failed to parse model file %s", path), err)
	}

	model, err := New(spec)
	if err != nil {
		return nil, domain.NewConfigError(fmt.Sprintf("invalid model file %s", path), err)
	}
	return model, nil
}

// Default is the model used when no model file is configured: risk grows
// with negative events and shrinks with positive ones.
func Default() *Logistic {
	m, _ := New(Spec{
		Features:     []string{"positive_events", "negative_events"},
		Coefficients: []float64{-0.35, 0.6},
		Intercept:    -0.5,
	})
	return m
}

// Features returns the expected column names, if the model declares them.
func (m *Logistic) Features() []string {
	return append([]string(nil), m.features...)
}

// PredictProba implements domain.Classifier. When the model declares
// feature names, columns are matched by name; otherwise by position.
func (m *Logistic) PredictProba(table domain.FeatureTable) ([][2]float64, error) {
	index, err := m.columnIndex(table.Columns)
	if err != nil {
		return nil, err
	}

	out := make([][2]float64, 0, len(table.Rows))
	for r, row := range table.Rows {
		z := m.intercept
		for i, c := range m.coefficients {
			col := index[i]
			if col >= len(row) {
				return nil, fmt.Errorf("row %d has %d values, need column %d", r, len(row), col)
			}
			z += c * row[col]
		}
		p := sigmoid(z)
		out = append(out, [2]float64{1 - p, p})
	}
	return out, nil
}

func (m *Logistic) columnIndex(columns []string) ([]int, error) {
	index := make([]int, len(m.coefficients))
	if len(m.features) == 0 || len(columns) == 0 {
		for i := range index {
			index[i] = i
		}
		return index, nil
	}

	pos := make(map[string]int, len(columns))
	for i, c := range columns {
		pos[c] = i
	}
	for i, f := range m.features {
		col, ok := pos[f]
		if !ok {
			return nil, fmt.Errorf("feature %q missing from input", f)
		}
		index[i] = col
	}
	return index, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
