package service

import (
	"fmt"

	"github.com/ludo-technologies/empdash/domain"
)

// OutputFormatResolver resolves output format and file extension from flags.
type OutputFormatResolver struct{}

func NewOutputFormatResolver() *OutputFormatResolver { return &OutputFormatResolver{} }

// Determine evaluates format flags and returns the selected format and extension.
// At most one of json/yaml may be true; if none are true, defaults to text.
func (r *OutputFormatResolver) Determine(json, yaml bool) (domain.OutputFormat, string, error) {
	switch {
	case json && yaml:
		return "", "", fmt.Errorf("only one output format flag can be specified")
	case json:
		return domain.OutputFormatJSON, "json", nil
	case yaml:
		return domain.OutputFormatYAML, "yaml", nil
	default:
		return domain.OutputFormatText, "txt", nil
	}
}
