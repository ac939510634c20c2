package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/ludo-technologies/empdash/domain"
)

// OptionsFormatterImpl implements domain.OptionsFormatter
type OptionsFormatterImpl struct{}

// NewOptionsFormatter creates a new options formatter
func NewOptionsFormatter() *OptionsFormatterImpl {
	return &OptionsFormatterImpl{}
}

// optionsDocument is the JSON/YAML shape of an options listing
type optionsDocument struct {
	Profile string         `json:"profile" yaml:"profile"`
	Options []optionRecord `json:"options" yaml:"options"`
}

type optionRecord struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Write implements domain.OptionsFormatter
func (f *OptionsFormatterImpl) Write(profile domain.ProfileType, options []domain.Option, format domain.OutputFormat, writer io.Writer) error {
	switch format {
	case domain.OutputFormatText, "":
		return f.writeText(profile, options, writer)
	case domain.OutputFormatJSON:
		return WriteJSON(writer, f.document(profile, options))
	case domain.OutputFormatYAML:
		return WriteYAML(writer, f.document(profile, options))
	default:
		return domain.NewUnsupportedFormatError(string(format))
	}
}

func (f *OptionsFormatterImpl) document(profile domain.ProfileType, options []domain.Option) optionsDocument {
	doc := optionsDocument{Profile: string(profile), Options: make([]optionRecord, 0, len(options))}
	for _, o := range options {
		doc.Options = append(doc.Options, optionRecord(o))
	}
	return doc
}

func (f *OptionsFormatterImpl) writeText(profile domain.ProfileType, options []domain.Option, writer io.Writer) error {
	utils := NewFormatUtils()

	width := len("ID")
	for _, o := range options {
		if len(o.Value) > width {
			width = len(o.Value)
		}
	}

	var builder strings.Builder
	builder.WriteString(utils.FormatMainHeader(fmt.Sprintf("%s Selection", profile)))
	builder.WriteString(utils.FormatTableHeader(fmt.Sprintf("%-*s", width, "ID"), "Name"))
	for _, o := range options {
		fmt.Fprintf(&builder, "%-*s  %s\n", width, o.Value, o.Label)
	}
	builder.WriteString("\n")
	builder.WriteString(utils.FormatLabel("Total", len(options)))

	if _, err := io.WriteString(writer, builder.String()); err != nil {
		return domain.NewOutputError("failed to write output", err)
	}
	return nil
}

var _ domain.OptionsFormatter = (*OptionsFormatterImpl)(nil)
