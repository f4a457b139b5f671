// Package nutritool exposes the daily nutrition estimate as MCP tools.
package nutritool

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"lg/daily-nutrition-go-api/internal/nutrition"
)

// Version is set at build time via ldflags.
var Version = "dev"

// NewServer creates the MCP server with every nutrition tool registered.
func NewServer() *server.MCPServer {
	s := server.NewMCPServer(
		"daily-nutrition",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	estimate := NewEstimateTool()
	s.AddTool(estimate.Definition(), estimate.Handle)

	levels := NewActivityLevelsTool()
	s.AddTool(levels.Definition(), levels.Handle)

	return s
}

// EstimateTool handles the estimate_daily_nutrition MCP tool.
type EstimateTool struct{}

// NewEstimateTool creates an EstimateTool.
func NewEstimateTool() *EstimateTool {
	return &EstimateTool{}
}

// Definition returns the MCP tool definition for estimate_daily_nutrition.
func (t *EstimateTool) Definition() mcp.Tool {
	return mcp.NewTool("estimate_daily_nutrition",
		mcp.WithDescription(
			"Estimación diaria aproximada de calorías, proteína, carbohidratos, grasas y agua según el peso "+
				"y el nivel de actividad, con consejos rápidos. Información orientativa, no reemplaza asesoría médica.",
		),
		mcp.WithNumber("weight",
			mcp.Required(),
			mcp.Description("Peso en kg (máximo 1000). Los valores negativos se toman como 0."),
		),
		mcp.WithNumber("activity",
			mcp.Description("Multiplicador de actividad: 1.1, 1.25, 1.4, 1.6 o 1.8 (por defecto: 1.1)"),
		),
	)
}

// Handle processes the estimate_daily_nutrition tool call.
func (t *EstimateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, ok := floatArg(req, "weight")
	if !ok {
		return mcp.NewToolResultError("'weight' es obligatorio y debe ser un número"), nil
	}
	if weight > nutrition.MaxWeightKG {
		return mcp.NewToolResultError(
			fmt.Sprintf("'weight' debe ser como máximo %v kg", nutrition.MaxWeightKG)), nil
	}
	activity, ok := floatArg(req, "activity")
	if !ok {
		activity = nutrition.DefaultActivity
	}
	if !nutrition.IsActivityLevel(activity) {
		return mcp.NewToolResultError(
			fmt.Sprintf("'activity' debe ser 1.1, 1.25, 1.4, 1.6 o 1.8, se recibió %v", activity)), nil
	}

	summary := nutrition.Compute(math.Max(weight, 0), activity).Summary()

	var b strings.Builder
	fmt.Fprintf(&b, "Referencia diaria aproximada (%v kg, actividad %v):\n", summary.WeightKG, summary.Activity)
	for _, line := range summary.ResultLines() {
		fmt.Fprintf(&b, "%s\n", line)
	}
	b.WriteString("\nConsejos rápidos:\n")
	for _, tip := range summary.Tips {
		fmt.Fprintf(&b, "- %s\n", tip)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ActivityLevelsTool handles the list_activity_levels MCP tool.
type ActivityLevelsTool struct{}

// NewActivityLevelsTool creates an ActivityLevelsTool.
func NewActivityLevelsTool() *ActivityLevelsTool {
	return &ActivityLevelsTool{}
}

// Definition returns the MCP tool definition for list_activity_levels.
func (t *ActivityLevelsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_activity_levels",
		mcp.WithDescription("Lista los multiplicadores de actividad que acepta estimate_daily_nutrition."),
	)
}

// Handle processes the list_activity_levels tool call.
func (t *ActivityLevelsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, l := range nutrition.ActivityLevels {
		fmt.Fprintf(&b, "%v: %s\n", l.Value, l.Label)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// floatArg extracts a finite number argument from a tool request.
func floatArg(req mcp.CallToolRequest, key string) (float64, bool) {
	v, ok := req.GetArguments()[key].(float64)
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
