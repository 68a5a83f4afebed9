package scheduling_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/schedule"
	"github.com/teemow/meetfewer/internal/server"
	"github.com/teemow/meetfewer/internal/tools/common"
)

// defaultSearchDays is the slot search horizon when the caller does not
// give one.
const defaultSearchDays = 7

// RegisterSlotTools registers slot search and conflict detection tools with the MCP server
func RegisterSlotTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Find optimal slots tool
	findOptimalSlotsTool := mcp.NewTool("find_optimal_slots",
		mcp.WithDescription("Find the best meeting slots for a group of participants across timezones, scored by preference fit, load balance, break adequacy, and timing"),
		mcp.WithString("participants",
			mcp.Required(),
			mcp.Description("Comma-separated list of participant IDs. All must exist in the directory."),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithNumber("daysAhead",
			mcp.Description("Search horizon in days from now (default: 7)"),
		),
		mcp.WithNumber("topN",
			mcp.Description("Maximum number of slots to return (default: 5)"),
		),
	)

	s.AddTool(findOptimalSlotsTool, common.InstrumentedToolHandlerWithOperation("find_optimal_slots", instrumentation.OperationFindSlots, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleFindOptimalSlots(ctx, request, sc)
		}))

	// Detect scheduling conflicts tool
	detectConflictsTool := mcp.NewTool("detect_scheduling_conflicts",
		mcp.WithDescription("Check a proposed time slot against a participant's calendar for hard overlaps and insufficient breaks"),
		mcp.WithString("participant",
			mcp.Required(),
			mcp.Description("Participant ID whose calendar to check"),
		),
		mcp.WithString("start",
			mcp.Required(),
			mcp.Description("Proposed slot start (RFC3339 format)"),
		),
		mcp.WithString("end",
			mcp.Required(),
			mcp.Description("Proposed slot end (RFC3339 format)"),
		),
		mcp.WithString("ignoreMeetingIds",
			mcp.Description("Comma-separated meeting IDs to exclude from the check (e.g., the meeting being moved)"),
		),
	)

	s.AddTool(detectConflictsTool, common.InstrumentedToolHandlerWithOperation("detect_scheduling_conflicts", instrumentation.OperationDetectConflicts, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDetectConflicts(ctx, request, sc)
		}))

	return nil
}

func handleFindOptimalSlots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	participants := common.ListFromArgs(args, "participants")
	if len(participants) == 0 {
		return mcp.NewToolResultError("participants is required"), nil
	}

	durationMinutes, ok := args["durationMinutes"].(float64)
	if !ok || durationMinutes <= 0 {
		return mcp.NewToolResultError("durationMinutes is required and must be positive"), nil
	}
	duration := time.Duration(durationMinutes) * time.Minute

	daysAhead := common.IntFromArgs(args, "daysAhead", defaultSearchDays)
	topN := common.IntFromArgs(args, "topN", schedule.DefaultTopSlots)

	now := time.Now().UTC()
	window := schedule.Interval{Start: now, End: now.AddDate(0, 0, daysAhead)}

	slots, err := sc.Planner().FindOptimalSlots(participants, duration, window, topN)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to find slots: %v", err)), nil
	}

	if m := sc.Metrics(); m != nil {
		m.RecordSlotCandidates(ctx, len(slots))
	}

	if len(slots) == 0 {
		return mcp.NewToolResultText("No workable slots found in the given window. Try a wider window or fewer participants."), nil
	}

	result := fmt.Sprintf("Found %d candidate slot(s) for a %d minute meeting:\n\n", len(slots), int(durationMinutes))
	for i, s := range slots {
		result += fmt.Sprintf("%d. %s to %s (score %.2f)\n",
			i+1, s.Slot.Start.Format(time.RFC3339), s.Slot.End.Format(time.RFC3339), s.Score)
		result += fmt.Sprintf("   preference %.2f, load %.2f, breaks %.2f, timing %.2f",
			s.PreferenceFit, s.LoadBalance, s.BreakAdequacy, s.Timing)
		if s.SoftConflicts > 0 {
			result += fmt.Sprintf(", %d tight break(s)", s.SoftConflicts)
		}
		result += "\n"
	}

	return mcp.NewToolResultText(result), nil
}

func handleDetectConflicts(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	participant, ok := args["participant"].(string)
	if !ok || participant == "" {
		return mcp.NewToolResultError("participant is required"), nil
	}

	start, err := common.TimeFromArgs(args, "start")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	end, err := common.TimeFromArgs(args, "end")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ignore := common.ListFromArgs(args, "ignoreMeetingIds")
	slot := schedule.Interval{Start: start, End: end}

	reports, err := sc.Planner().DetectSchedulingConflicts([]string{participant}, slot, ignore...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to detect conflicts: %v", err)), nil
	}

	result := fmt.Sprintf("Conflict check for %s to %s:\n",
		slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
	result += formatConflictReports(ctx, sc, reports)

	return mcp.NewToolResultText(result), nil
}

// formatConflictReports renders per-participant conflict reports and
// records conflict metrics. Conflicts never block anything; the output
// is advisory.
func formatConflictReports(ctx context.Context, sc *server.ServerContext, reports []schedule.ConflictReport) string {
	hardTotal := 0
	softTotal := 0
	for _, r := range reports {
		hardTotal += len(r.Hard)
		softTotal += len(r.Soft)
	}

	if m := sc.Metrics(); m != nil {
		m.RecordConflictsDetected(ctx, instrumentation.ConflictHard, hardTotal)
		m.RecordConflictsDetected(ctx, instrumentation.ConflictSoft, softTotal)
	}

	if hardTotal == 0 && softTotal == 0 {
		return "  No conflicts detected\n"
	}

	result := ""
	for _, r := range reports {
		if len(r.Hard) == 0 && len(r.Soft) == 0 {
			continue
		}
		result += fmt.Sprintf("  %s:\n", r.Participant)
		for _, c := range r.Hard {
			result += fmt.Sprintf("    HARD: overlaps %q by %d minute(s)\n", c.Meeting.Title, c.OverlapMinutes)
		}
		for _, c := range r.Soft {
			result += fmt.Sprintf("    SOFT: only %d minute(s) before/after %q (%d short of minimum break)\n",
				c.GapMinutes, c.Meeting.Title, c.ShortfallMinutes)
		}
	}
	return result
}
