package plot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ludo-technologies/empdash/domain"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func lineFigure() *ChartFigure {
	return &ChartFigure{
		Chart: chart.Chart{
			Series: []chart.Series{
				chart.ContinuousSeries{Name: "a", XValues: []float64{0, 1, 2}, YValues: []float64{0, 1, 3}},
				chart.ContinuousSeries{Name: "b", XValues: []float64{0, 1, 2}, YValues: []float64{0, 2, 2}},
			},
		},
		Legend: true,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{" SVG ", FormatSVG, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Equal(t, domain.ErrCodeUnsupportedFormat, domain.CodeOf(err), tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNewBackend_Defaults(t *testing.T) {
	b := NewBackend("", 0, -1)
	assert.Equal(t, FormatPNG, b.Format)
	assert.Equal(t, DefaultWidth, b.Width)
	assert.Equal(t, DefaultHeight, b.Height)
}

func TestBackend_EncodePNG(t *testing.T) {
	data, err := NewBackend(FormatPNG, 320, 200).Encode(lineFigure())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestBackend_EncodeSVG(t *testing.T) {
	data, err := NewBackend(FormatSVG, 320, 200).Encode(lineFigure())
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestBackend_EncodeNil(t *testing.T) {
	_, err := NewBackend(FormatPNG, 0, 0).Encode(nil)
	assert.Error(t, err)
}

func TestBackend_DataURI(t *testing.T) {
	uri, err := NewBackend(FormatSVG, 0, 0).DataURI(lineFigure())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/svg+xml;base64,"))

	uri, err = NewBackend(FormatPNG, 0, 0).DataURI(Placeholder{Title: "Trend", Message: "No events recorded"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
}

func TestChartFigure_DrawIsRepeatable(t *testing.T) {
	fig := lineFigure()
	b := NewBackend(FormatSVG, 320, 200)

	first, err := b.Encode(fig)
	require.NoError(t, err)
	second, err := b.Encode(fig)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, fig.Chart.Elements)
}

func TestStyleAxes(t *testing.T) {
	fig := lineFigure()
	StyleAxes(&fig.Chart, chart.ColorBlack, chart.ColorBlue)
	assert.Equal(t, chart.ColorBlack, fig.Chart.XAxis.Style.StrokeColor)
	assert.Equal(t, chart.ColorBlue, fig.Chart.YAxis.NameStyle.FontColor)
	assert.Equal(t, chart.ColorBlue, fig.Chart.TitleStyle.FontColor)
}
