package domain

import (
	"context"
	"io"
	"time"
)

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatHTML OutputFormat = "html"
)

// ReportRenderer turns an entity and its adapter into a complete HTML document.
type ReportRenderer interface {
	Render(ctx context.Context, id EntityID, model ModelAdapter) ([]byte, error)
}

// AdapterProvider resolves the adapter variant for a profile type.
type AdapterProvider interface {
	Adapter(profile ProfileType) (ModelAdapter, error)
}

// RenderRequest represents a request to render one report
type RenderRequest struct {
	Profile ProfileType
	ID      EntityID

	// Output configuration
	OutputWriter io.Writer
	OutputPath   string // Path to save the HTML document; empty writes to OutputWriter
	NoOpen       bool   // Don't auto-open HTML in browser
}

// ExportRequest represents a request to render every report of the given profiles
type ExportRequest struct {
	Profiles       []ProfileType
	OutputDir      string
	MaxConcurrency int           // 0 means no limit
	Timeout        time.Duration // 0 keeps the executor default
}

// ExportFailure records one report that could not be exported
type ExportFailure struct {
	Profile ProfileType
	ID      string
	Err     error
}

// ExportSummary is the outcome of an export run
type ExportSummary struct {
	Total    int
	Written  []string
	Failures []ExportFailure
}

// OptionsRequest represents a request to list the selectable entities of a profile
type OptionsRequest struct {
	Profile      ProfileType
	OutputFormat OutputFormat
	OutputWriter io.Writer
}

// OptionsFormatter writes selector options in a given format
type OptionsFormatter interface {
	Write(profile ProfileType, options []Option, format OutputFormat, writer io.Writer) error
}
