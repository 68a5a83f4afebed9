package agenda_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/agenda"
	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/server"
	"github.com/teemow/meetfewer/internal/tools/common"
)

// RegisterAgendaTools registers agenda generation tools with the MCP server
func RegisterAgendaTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	generateAgendaTool := mcp.NewTool("generate_agenda_suggestions",
		mcp.WithDescription("Generate a timed agenda with preparation tips for a meeting topic, templated by the detected meeting type"),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("Meeting topic or title (e.g., 'Q3 Planning', 'Daily Standup')"),
		),
		mcp.WithString("participants",
			mcp.Description("Comma-separated list of participant IDs. Large groups get an introductions item and a facilitator tip."),
		),
	)

	s.AddTool(generateAgendaTool, common.InstrumentedToolHandlerWithOperation("generate_agenda_suggestions", instrumentation.OperationAgenda, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGenerateAgenda(ctx, request)
		}))

	return nil
}

func handleGenerateAgenda(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	topic, ok := args["topic"].(string)
	if !ok || strings.TrimSpace(topic) == "" {
		return mcp.NewToolResultError("topic is required"), nil
	}

	participants := common.ListFromArgs(args, "participants")

	suggestion := agenda.Generate(topic, participants)

	result := fmt.Sprintf("Agenda for %q (%s, %d minutes):\n\n", suggestion.Topic, suggestion.MeetingType, suggestion.TotalMinutes)
	for i, item := range suggestion.Items {
		result += fmt.Sprintf("%d. %s (%d min)\n", i+1, item.Title, item.Minutes)
	}

	if len(suggestion.PreparationTips) > 0 {
		result += "\nPreparation:\n"
		for _, tip := range suggestion.PreparationTips {
			result += fmt.Sprintf("  - %s\n", tip)
		}
	}

	return mcp.NewToolResultText(result), nil
}
