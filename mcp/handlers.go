package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ludo-technologies/empdash/domain"
	"github.com/ludo-technologies/empdash/service"
)

// HandlerSet exposes MCP tool handlers with shared dependencies.
type HandlerSet struct {
	deps *Dependencies
}

// NewHandlerSet constructs a handler set.
func NewHandlerSet(deps *Dependencies) *HandlerSet {
	return &HandlerSet{deps: deps}
}

// HandleListOptions handles the list_options tool
func (h *HandlerSet) HandleListOptions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	profile, errResult := profileArg(args)
	if errResult != nil {
		return errResult, nil
	}

	useCase, err := h.deps.BuildOptionsUseCase()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create options lister: %v", err)), nil
	}

	var buf bytes.Buffer
	err = useCase.Execute(ctx, domain.OptionsRequest{
		Profile:      profile,
		OutputFormat: domain.OutputFormatJSON,
		OutputWriter: &buf,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing options failed: %v", err)), nil
	}

	return mcp.NewToolResultText(buf.String()), nil
}

// HandlePredictRisk handles the predict_risk tool
func (h *HandlerSet) HandlePredictRisk(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	profile, errResult := profileArg(args)
	if errResult != nil {
		return errResult, nil
	}
	id, errResult := idArg(args)
	if errResult != nil {
		return errResult, nil
	}

	useCase, err := h.deps.BuildRiskUseCase()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create risk predictor: %v", err)), nil
	}

	result, err := useCase.Execute(ctx, profile, id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("risk prediction failed: %v", err)), nil
	}

	jsonData, err := json.Marshal(map[string]interface{}{
		"profile": result.Profile,
		"id":      result.ID,
		"risk":    result.Risk,
		"level":   service.RiskLevelFor(result.Risk),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// HandleRenderReport handles the render_report tool
func (h *HandlerSet) HandleRenderReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return mcp.NewToolResultError("invalid arguments format"), nil
	}
	profile, errResult := profileArg(args)
	if errResult != nil {
		return errResult, nil
	}
	id, errResult := idArg(args)
	if errResult != nil {
		return errResult, nil
	}
	outputPath, _ := args["output_path"].(string)

	useCase, err := h.deps.BuildRenderUseCase()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to create renderer: %v", err)), nil
	}

	var buf bytes.Buffer
	req := domain.RenderRequest{
		Profile:      profile,
		ID:           id,
		OutputWriter: &buf,
		OutputPath:   outputPath,
		NoOpen:       true,
	}
	if err := useCase.Execute(ctx, req); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering failed: %v", err)), nil
	}

	if outputPath != "" {
		jsonData, err := json.Marshal(map[string]string{"path": outputPath})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

func profileArg(args map[string]interface{}) (domain.ProfileType, *mcp.CallToolResult) {
	raw, ok := args["profile"].(string)
	if !ok {
		return "", mcp.NewToolResultError("profile parameter is required and must be a string")
	}
	profile, err := domain.ParseProfileType(raw)
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	return profile, nil
}

// idArg accepts a JSON number or a decimal string
func idArg(args map[string]interface{}) (domain.EntityID, *mcp.CallToolResult) {
	switch v := args["id"].(type) {
	case float64:
		if v != math.Trunc(v) {
			return domain.NoEntity, mcp.NewToolResultError("id must be an integer")
		}
		// float64(math.MaxInt64) rounds up to 2^63, which is out of range.
		if v < math.MinInt64 || v >= math.MaxInt64 {
			return domain.NoEntity, mcp.NewToolResultError("id is out of range")
		}
		return domain.ID(int64(v)), nil
	case string:
		id, err := domain.ParseEntityID(v)
		if err != nil {
			return domain.NoEntity, mcp.NewToolResultError(err.Error())
		}
		return id, nil
	case nil:
		return domain.NoEntity, mcp.NewToolResultError("id parameter is required")
	default:
		return domain.NoEntity, mcp.NewToolResultError("id must be an integer, got " + strconv.Quote(fmt.Sprint(v)))
	}
}
