// Package plot draws report figures with go-chart and encodes them for
// embedding in HTML.
package plot

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/ludo-technologies/empdash/domain"
)

// Format is an image encoding supported by the backend.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Default figure size in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 400
)

// ParseFormat accepts "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", domain.NewUnsupportedFormatError(s)
	}
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

func (f Format) mediaType() string {
	if f == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Figure is a prepared chart waiting to be drawn.
type Figure interface {
	Draw(rp chart.RendererProvider, width, height int, w io.Writer) error
}

// Backend draws figures at a fixed size and format. It holds no per-call state
// and may be shared between goroutines.
type Backend struct {
	Format Format
	Width  int
	Height int
}

// NewBackend creates a backend, falling back to the default size for
// non-positive dimensions.
func NewBackend(format Format, width, height int) Backend {
	if format == "" {
		format = FormatPNG
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Backend{Format: format, Width: width, Height: height}
}

// Encode draws fig and returns the image bytes.
func (b Backend) Encode(fig Figure) ([]byte, error) {
	if fig == nil {
		return nil, fmt.Errorf("no figure to draw")
	}
	var buf bytes.Buffer
	if err := fig.Draw(b.Format.provider(), b.Width, b.Height, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DataURI draws fig and returns it as a base64 data URI for an <img> src.
func (b Backend) DataURI(fig Figure) (string, error) {
	data, err := b.Encode(fig)
	if err != nil {
		return "", err
	}
	return "data:" + b.Format.mediaType() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
