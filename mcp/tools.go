package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all empdash MCP tools with the server
func RegisterTools(s *server.MCPServer, h *HandlerSet) {
	// Tool 1: list_options - Selectable employees or teams
	s.AddTool(mcp.NewTool("list_options",
		mcp.WithDescription("List the employees or teams the dashboard selector offers, as id/name pairs"),
		mcp.WithString("profile",
			mcp.Required(),
			mcp.Enum("employee", "team"),
			mcp.Description("Profile type: employee or team")),
	), h.HandleListOptions)

	// Tool 2: predict_risk - Recruitment risk
	s.AddTool(mcp.NewTool("predict_risk",
		mcp.WithDescription("Predict the recruitment risk (0-1) of an employee or team; a team's risk is the mean over its members"),
		mcp.WithString("profile",
			mcp.Required(),
			mcp.Enum("employee", "team"),
			mcp.Description("Profile type: employee or team")),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Employee or team id")),
	), h.HandlePredictRisk)

	// Tool 3: render_report - Full HTML report
	s.AddTool(mcp.NewTool("render_report",
		mcp.WithDescription("Render the HTML dashboard report of an employee or team"),
		mcp.WithString("profile",
			mcp.Required(),
			mcp.Enum("employee", "team"),
			mcp.Description("Profile type: employee or team")),
		mcp.WithNumber("id",
			mcp.Required(),
			mcp.Description("Employee or team id")),
		mcp.WithString("output_path",
			mcp.Description("Write the report to this file instead of returning the HTML")),
	), h.HandleRenderReport)
}
