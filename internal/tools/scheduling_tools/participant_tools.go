package scheduling_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/schedule"
	"github.com/teemow/meetfewer/internal/server"
	"github.com/teemow/meetfewer/internal/tools/common"
)

// RegisterParticipantTools registers participant directory tools with the MCP server
func RegisterParticipantTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Upsert participant tool
	upsertParticipantTool := mcp.NewTool("upsert_participant",
		mcp.WithDescription("Create or update a participant in the scheduling directory with timezone and working preferences"),
		mcp.WithString("participant",
			mcp.Required(),
			mcp.Description("Participant identifier (e.g., email address)"),
		),
		mcp.WithString("timezone",
			mcp.Required(),
			mcp.Description("IANA timezone name (e.g., 'America/New_York', 'Asia/Tokyo')"),
		),
		mcp.WithNumber("workStartHour",
			mcp.Description("Local hour the working day starts (0-23, default: 9)"),
		),
		mcp.WithNumber("workEndHour",
			mcp.Description("Local hour the working day ends (0-23, default: 17)"),
		),
		mcp.WithNumber("maxDailyMeetings",
			mcp.Description("Maximum meetings per local day (default: 6)"),
		),
		mcp.WithNumber("minBreakMinutes",
			mcp.Description("Minimum break between meetings in minutes (default: 15)"),
		),
	)

	s.AddTool(upsertParticipantTool, common.InstrumentedToolHandler("upsert_participant", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpsertParticipant(ctx, request, sc)
		}))

	// List participants tool
	listParticipantsTool := mcp.NewTool("list_participants",
		mcp.WithDescription("List all participants in the scheduling directory with their timezones and preferences"),
	)

	s.AddTool(listParticipantsTool, common.InstrumentedToolHandlerWithOperation("list_participants", instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListParticipants(ctx, request, sc)
		}))

	return nil
}

func handleUpsertParticipant(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	id, ok := args["participant"].(string)
	if !ok || strings.TrimSpace(id) == "" {
		return mcp.NewToolResultError("participant is required"), nil
	}

	timezone, ok := args["timezone"].(string)
	if !ok || timezone == "" {
		return mcp.NewToolResultError("timezone is required"), nil
	}

	workStart := common.IntFromArgs(args, "workStartHour", 0)
	workEnd := common.IntFromArgs(args, "workEndHour", 0)
	maxDaily := common.IntFromArgs(args, "maxDailyMeetings", 0)
	minBreak := common.IntFromArgs(args, "minBreakMinutes", 0)

	p, err := schedule.NewParticipant(strings.TrimSpace(id), timezone, workStart, workEnd, maxDaily, minBreak)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid participant: %v", err)), nil
	}

	sc.Store().UpsertParticipant(p)

	result := fmt.Sprintf("Participant saved: %s\n", p.ID)
	result += fmt.Sprintf("  Timezone: %s\n", p.Timezone)
	result += fmt.Sprintf("  Working hours: %02d:00 to %02d:00 local\n", p.WorkStartHour, p.WorkEndHour)
	result += fmt.Sprintf("  Max meetings per day: %d\n", p.MaxDailyMeetings)
	result += fmt.Sprintf("  Min break between meetings: %d minutes\n", p.MinBreakMinutes)

	return mcp.NewToolResultText(result), nil
}

func handleListParticipants(_ context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	participants := sc.Store().Participants()

	if len(participants) == 0 {
		return mcp.NewToolResultText("No participants in the directory"), nil
	}

	result := fmt.Sprintf("Found %d participant(s):\n\n", len(participants))
	for i, p := range participants {
		result += fmt.Sprintf("%d. %s\n", i+1, p.ID)
		result += fmt.Sprintf("   Timezone: %s, working %02d:00 to %02d:00 local\n", p.Timezone, p.WorkStartHour, p.WorkEndHour)
		result += fmt.Sprintf("   Max %d meetings/day, min break %d minutes\n", p.MaxDailyMeetings, p.MinBreakMinutes)
	}

	return mcp.NewToolResultText(result), nil
}
