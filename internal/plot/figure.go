package plot

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartFigure draws a go-chart chart. The chart value is copied on every
// Draw, so one figure can be drawn repeatedly.
type ChartFigure struct {
	Chart chart.Chart

	// Legend adds a legend element when the chart has more than one series.
	Legend bool
}

// Draw implements Figure.
func (f *ChartFigure) Draw(rp chart.RendererProvider, width, height int, w io.Writer) error {
	c := f.Chart
	c.Width = width
	c.Height = height
	if f.Legend && len(c.Series) > 1 {
		c.Elements = append(append([]chart.Renderable(nil), c.Elements...), chart.Legend(&c))
	}
	return c.Render(rp, w)
}

// StyleAxes applies the shared axis styling pass: border (axis lines and
// canvas outline) and font colors for title, axis names and tick labels.
func StyleAxes(c *chart.Chart, border, font drawing.Color) {
	c.TitleStyle.FontColor = font
	c.Canvas.StrokeColor = border
	c.Canvas.StrokeWidth = 1

	c.XAxis.Style.StrokeColor = border
	c.XAxis.Style.FontColor = font
	c.XAxis.NameStyle.FontColor = font

	c.YAxis.Style.StrokeColor = border
	c.YAxis.Style.FontColor = font
	c.YAxis.NameStyle.FontColor = font
}

// Placeholder is drawn instead of a chart when the data is valid but empty.
type Placeholder struct {
	Title   string
	Message string
}

// Draw implements Figure.
func (p Placeholder) Draw(rp chart.RendererProvider, width, height int, w io.Writer) error {
	r, err := rp(width, height)
	if err != nil {
		return err
	}
	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetFillColor(drawing.ColorWhite)
	r.SetStrokeColor(drawing.ColorBlack)
	r.SetStrokeWidth(1)
	r.MoveTo(0, 0)
	r.LineTo(width-1, 0)
	r.LineTo(width-1, height-1)
	r.LineTo(0, height-1)
	r.Close()
	r.FillStroke()

	r.SetFont(font)
	r.SetFontColor(drawing.ColorBlack)
	if p.Title != "" {
		r.SetFontSize(16)
		tb := r.MeasureText(p.Title)
		r.Text(p.Title, (width-tb.Width())/2, 24+tb.Height())
	}
	r.SetFontSize(12)
	mb := r.MeasureText(p.Message)
	r.Text(p.Message, (width-mb.Width())/2, (height+mb.Height())/2)

	return r.Save(w)
}
