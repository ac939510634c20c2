package service

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ludo-technologies/empdash/domain"
)

var sampleOptions = []domain.Option{
	{Value: "1", Label: "Alice Smith"},
	{Value: "12", Label: "Bob Jones"},
}

func TestOptionsFormatter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOptionsFormatter().Write(domain.ProfileEmployee, sampleOptions, domain.OutputFormatText, &buf))

	out := buf.String()
	assert.Contains(t, out, "Employee Selection\n")
	assert.Contains(t, out, "1   Alice Smith\n")
	assert.Contains(t, out, "12  Bob Jones\n")
	assert.Contains(t, out, "Total: 2")
}

func TestOptionsFormatter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOptionsFormatter().Write(domain.ProfileTeam, sampleOptions, domain.OutputFormatJSON, &buf))

	var doc optionsDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "Team", doc.Profile)
	assert.Equal(t, []optionRecord{{Value: "1", Label: "Alice Smith"}, {Value: "12", Label: "Bob Jones"}}, doc.Options)
}

func TestOptionsFormatter_YAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewOptionsFormatter().Write(domain.ProfileTeam, nil, domain.OutputFormatYAML, &buf))

	var doc optionsDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Empty(t, doc.Options)
	assert.Contains(t, buf.String(), "options: []")
}

func TestOptionsFormatter_Unsupported(t *testing.T) {
	err := NewOptionsFormatter().Write(domain.ProfileTeam, nil, domain.OutputFormatHTML, &bytes.Buffer{})
	assert.Equal(t, domain.ErrCodeUnsupportedFormat, domain.CodeOf(err))
}

func TestOutputFormatResolver(t *testing.T) {
	r := NewOutputFormatResolver()

	format, ext, err := r.Determine(false, false)
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatText, format)
	assert.Equal(t, "txt", ext)

	format, _, err = r.Determine(true, false)
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatJSON, format)

	format, _, err = r.Determine(false, true)
	require.NoError(t, err)
	assert.Equal(t, domain.OutputFormatYAML, format)

	_, _, err = r.Determine(true, true)
	assert.Error(t, err)
}

func TestRiskLevelFor(t *testing.T) {
	assert.Equal(t, RiskLow, RiskLevelFor(0.1))
	assert.Equal(t, RiskMedium, RiskLevelFor(0.5))
	assert.Equal(t, RiskHigh, RiskLevelFor(0.9))
}
