package mcp

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runToolTest(
	t *testing.T,
	arguments interface{},
	handlerFunc func(*HandlerSet, context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error),
) *mcplib.CallToolResult {
	t.Helper()
	h := NewHandlerSet(NewTestDependencies(t))

	req := mcplib.CallToolRequest{
		Params: mcplib.CallToolParams{
			Arguments: arguments,
		},
	}

	res, err := handlerFunc(h, context.Background(), req)
	require.NoError(t, err)
	return res
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text
}

func TestHandleListOptions(t *testing.T) {
	tests := map[string]struct {
		arguments    interface{}
		isError      bool
		expectPrefix string
	}{
		"invalid_arguments_format": {arguments: "not-a-map", isError: true, expectPrefix: "invalid arguments format"},
		"profile_missing":          {arguments: map[string]interface{}{}, isError: true, expectPrefix: "profile parameter is required"},
		"unknown_profile":          {arguments: map[string]interface{}{"profile": "manager"}, isError: true},
		"teams":                    {arguments: map[string]interface{}{"profile": "team"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			res := runToolTest(t, tt.arguments, (*HandlerSet).HandleListOptions)
			assert.Equal(t, tt.isError, res.IsError)
			text := resultText(t, res)
			if tt.expectPrefix != "" {
				assert.True(t, strings.HasPrefix(text, tt.expectPrefix), "got %q", text)
			}
			if !tt.isError {
				var doc struct {
					Profile string `json:"profile"`
					Options []struct {
						Value string `json:"value"`
						Label string `json:"label"`
					} `json:"options"`
				}
				require.NoError(t, json.Unmarshal([]byte(text), &doc))
				assert.Equal(t, "Team", doc.Profile)
				require.Len(t, doc.Options, 2)
				assert.Equal(t, "Alpha", doc.Options[0].Label)
			}
		})
	}
}

func TestHandlePredictRisk(t *testing.T) {
	t.Run("numeric id", func(t *testing.T) {
		res := runToolTest(t, map[string]interface{}{"profile": "employee", "id": float64(1)}, (*HandlerSet).HandlePredictRisk)
		require.False(t, res.IsError, resultText(t, res))

		var out struct {
			Profile string  `json:"profile"`
			ID      string  `json:"id"`
			Risk    float64 `json:"risk"`
			Level   string  `json:"level"`
		}
		require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &out))
		assert.Equal(t, "Employee", out.Profile)
		assert.Equal(t, "1", out.ID)
		assert.GreaterOrEqual(t, out.Risk, 0.0)
		assert.LessOrEqual(t, out.Risk, 1.0)
		assert.Contains(t, []string{"Low", "Medium", "High"}, out.Level)
	})

	t.Run("string id", func(t *testing.T) {
		res := runToolTest(t, map[string]interface{}{"profile": "team", "id": "1"}, (*HandlerSet).HandlePredictRisk)
		assert.False(t, res.IsError, resultText(t, res))
	})

	t.Run("fractional id", func(t *testing.T) {
		res := runToolTest(t, map[string]interface{}{"profile": "team", "id": 1.5}, (*HandlerSet).HandlePredictRisk)
		assert.True(t, res.IsError)
		assert.Equal(t, "id must be an integer", resultText(t, res))
	})

	for name, id := range map[string]float64{
		"huge id":            1e300,
		"positive infinity":  math.Inf(1),
		"negative infinity":  math.Inf(-1),
		"just past max int":  math.MaxInt64,
		"just below min int": -1e19,
	} {
		t.Run(name, func(t *testing.T) {
			res := runToolTest(t, map[string]interface{}{"profile": "employee", "id": id}, (*HandlerSet).HandlePredictRisk)
			assert.True(t, res.IsError)
			assert.Equal(t, "id is out of range", resultText(t, res))
		})
	}

	t.Run("unknown employee", func(t *testing.T) {
		res := runToolTest(t, map[string]interface{}{"profile": "employee", "id": float64(99)}, (*HandlerSet).HandlePredictRisk)
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "risk prediction failed")
	})

	t.Run("missing id", func(t *testing.T) {
		res := runToolTest(t, map[string]interface{}{"profile": "employee"}, (*HandlerSet).HandlePredictRisk)
		assert.True(t, res.IsError)
	})
}

func TestHandleRenderReport(t *testing.T) {
	t.Run("inline html", func(t *testing.T) {
		res := runToolTest(t, map[string]interface{}{"profile": "employee", "id": float64(2)}, (*HandlerSet).HandleRenderReport)
		require.False(t, res.IsError, resultText(t, res))
		text := resultText(t, res)
		assert.True(t, strings.HasPrefix(text, "<!DOCTYPE html>"))
		assert.Contains(t, text, "Bob Jones")
	})

	t.Run("output path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "team-1.html")
		res := runToolTest(t, map[string]interface{}{"profile": "team", "id": float64(1), "output_path": path}, (*HandlerSet).HandleRenderReport)
		require.False(t, res.IsError, resultText(t, res))
		assert.JSONEq(t, `{"path":"`+path+`"}`, resultText(t, res))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Alpha")
	})
}
