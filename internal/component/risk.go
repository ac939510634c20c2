package component

import (
	"context"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/internal/plot"
)

const riskTitle = "Predicted Recruitment Risk"

// RiskChart plots the classifier's positive-class probability for the entity.
type RiskChart struct {
	classifier domain.Classifier
}

// NewRiskChart creates a risk chart backed by a loaded classifier.
func NewRiskChart(classifier domain.Classifier) RiskChart {
	return RiskChart{classifier: classifier}
}

// Risk returns the displayed risk: the mean positive-class probability across
// a team's members, or the first row's probability for anything else.
func (r RiskChart) Risk(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (float64, error) {
	n, err := requireID(id, "risk chart")
	if err != nil {
		return 0, err
	}
	if r.classifier == nil {
		return 0, domain.NewUpstreamError("risk chart has no classifier", nil)
	}

	what := "model data for " + model.Name() + " " + id.String()
	features, err := model.ModelData(ctx, n)
	if err != nil {
		return 0, modelError(what, err)
	}
	if features.Len() == 0 {
		return 0, domain.NewDataUnavailableError(what+": no rows", nil)
	}

	proba, err := r.classifier.PredictProba(features)
	if err != nil {
		return 0, domain.NewUpstreamError("classifier prediction failed", err)
	}
	if len(proba) == 0 {
		return 0, domain.NewUpstreamError(fmt.Sprintf("classifier returned no rows for %d inputs", features.Len()), nil)
	}

	if model.Name() == domain.ModelNameTeam {
		var sum float64
		for _, p := range proba {
			sum += p[1]
		}
		return sum / float64(len(proba)), nil
	}
	return proba[0][1], nil
}

// Visualize implements Visualization.
func (r RiskChart) Visualize(ctx context.Context, id domain.EntityID, model domain.ModelAdapter) (plot.Figure, error) {
	risk, err := r.Risk(ctx, id, model)
	if err != nil {
		return nil, err
	}
	return riskFigure(risk), nil
}

// riskFigure draws a single horizontal bar from 0 to risk on a 0..1 axis.
func riskFigure(risk float64) *plot.ChartFigure {
	c := chart.Chart{
		Title:      riskTitle,
		TitleStyle: chart.Style{FontSize: 20},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "risk",
				XValues: []float64{0, risk},
				YValues: []float64{0.5, 0.5},
				Style: chart.Style{
					StrokeColor: drawing.ColorFromHex("1f77b4"),
					StrokeWidth: 60,
				},
			},
		},
	}
	plot.StyleAxes(&c, drawing.ColorBlack, drawing.ColorBlack)
	return &plot.ChartFigure{Chart: c}
}
