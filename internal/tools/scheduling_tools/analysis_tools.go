package scheduling_tools

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/schedule"
	"github.com/teemow/meetfewer/internal/server"
	"github.com/teemow/meetfewer/internal/tools/common"
)

// RegisterAnalysisTools registers workload, effectiveness, and pattern analysis tools with the MCP server
func RegisterAnalysisTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Calculate workload balance tool
	workloadBalanceTool := mcp.NewTool("calculate_workload_balance",
		mcp.WithDescription("Compare meeting load across participants over a period and measure how evenly it is distributed"),
		mcp.WithString("participants",
			mcp.Required(),
			mcp.Description("Comma-separated list of participant IDs. All must exist in the directory."),
		),
		mcp.WithString("periodStart",
			mcp.Required(),
			mcp.Description("Period start (RFC3339 format)"),
		),
		mcp.WithString("periodEnd",
			mcp.Required(),
			mcp.Description("Period end (RFC3339 format)"),
		),
	)

	s.AddTool(workloadBalanceTool, common.InstrumentedToolHandlerWithOperation("calculate_workload_balance", instrumentation.OperationWorkload, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleWorkloadBalance(ctx, request, sc)
		}))

	// Score meeting effectiveness tool
	effectivenessTool := mcp.NewTool("score_meeting_effectiveness",
		mcp.WithDescription("Rate a scheduled meeting on duration efficiency, group size, agenda presence, and time of day, with improvement suggestions"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting to score"),
		),
	)

	s.AddTool(effectivenessTool, common.InstrumentedToolHandlerWithOperation("score_meeting_effectiveness", instrumentation.OperationEffectiveness, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleScoreEffectiveness(ctx, request, sc)
		}))

	// Analyze meeting patterns tool
	patternsTool := mcp.NewTool("analyze_meeting_patterns",
		mcp.WithDescription("Summarize a participant's meeting distribution by weekday and hour, with derived insights"),
		mcp.WithString("participant",
			mcp.Required(),
			mcp.Description("Participant ID to analyze"),
		),
		mcp.WithString("periodStart",
			mcp.Required(),
			mcp.Description("Period start (RFC3339 format)"),
		),
		mcp.WithString("periodEnd",
			mcp.Required(),
			mcp.Description("Period end (RFC3339 format)"),
		),
	)

	s.AddTool(patternsTool, common.InstrumentedToolHandlerWithOperation("analyze_meeting_patterns", instrumentation.OperationPatterns, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleAnalyzePatterns(ctx, request, sc)
		}))

	// Optimize meeting schedule tool
	optimizeTool := mcp.NewTool("optimize_meeting_schedule",
		mcp.WithDescription("Scan a participant's schedule for overloaded days, off-hours meetings, missing breaks, and overlong meetings, and recommend fixes"),
		mcp.WithString("participant",
			mcp.Required(),
			mcp.Description("Participant ID to optimize for"),
		),
		mcp.WithString("periodStart",
			mcp.Required(),
			mcp.Description("Period start (RFC3339 format)"),
		),
		mcp.WithString("periodEnd",
			mcp.Required(),
			mcp.Description("Period end (RFC3339 format)"),
		),
	)

	s.AddTool(optimizeTool, common.InstrumentedToolHandlerWithOperation("optimize_meeting_schedule", instrumentation.OperationOptimize, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleOptimizeSchedule(ctx, request, sc)
		}))

	return nil
}

func handleWorkloadBalance(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	participants := common.ListFromArgs(args, "participants")
	if len(participants) == 0 {
		return mcp.NewToolResultError("participants is required"), nil
	}

	period, result := periodFromArgs(args)
	if result != nil {
		return result, nil
	}

	balance, err := sc.Planner().CalculateWorkloadBalance(participants, period)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to calculate workload balance: %v", err)), nil
	}

	text := fmt.Sprintf("Workload balance for %d participant(s), %s to %s:\n\n",
		len(balance.Summaries), period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339))

	for _, s := range balance.Summaries {
		text += fmt.Sprintf("  %s: %d meeting(s), %d minutes total", s.Participant, s.MeetingCount, s.TotalMinutes)
		if s.BusiestDay != "" {
			text += fmt.Sprintf(", busiest day %s (%d minutes)", s.BusiestDay, s.BusiestDayMinutes)
		}
		text += "\n"
	}

	text += fmt.Sprintf("\nMean: %.1f minutes, stddev: %.1f minutes\n", balance.MeanMinutes, balance.StdDevMinutes)
	text += fmt.Sprintf("Imbalance: %.2f", balance.Imbalance)
	switch {
	case balance.Imbalance < 0.25:
		text += " (well balanced)"
	case balance.Imbalance < 0.75:
		text += " (moderately skewed)"
	default:
		text += " (heavily skewed)"
	}
	text += "\n"

	return mcp.NewToolResultText(text), nil
}

func handleScoreEffectiveness(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	meetingID, ok := args["meetingId"].(string)
	if !ok || meetingID == "" {
		return mcp.NewToolResultError("meetingId is required"), nil
	}

	report, err := sc.Planner().ScoreMeetingEffectiveness(meetingID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to score meeting: %v", err)), nil
	}

	text := fmt.Sprintf("Effectiveness of meeting %s (classified as %s): %.2f\n\n", report.MeetingID, report.Type, report.Score)
	text += fmt.Sprintf("  Duration efficiency: %.2f\n", report.DurationEfficiency)
	text += fmt.Sprintf("  Group size: %.2f\n", report.GroupSize)
	text += fmt.Sprintf("  Agenda presence: %.2f\n", report.AgendaPresence)
	text += fmt.Sprintf("  Time of day: %.2f\n", report.TimeOfDay)

	if len(report.Suggestions) > 0 {
		text += "\nSuggestions:\n"
		for _, s := range report.Suggestions {
			text += fmt.Sprintf("  - %s\n", s)
		}
	}

	return mcp.NewToolResultText(text), nil
}

func handleAnalyzePatterns(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	participant, ok := args["participant"].(string)
	if !ok || participant == "" {
		return mcp.NewToolResultError("participant is required"), nil
	}

	period, result := periodFromArgs(args)
	if result != nil {
		return result, nil
	}

	report, err := sc.Planner().AnalyzeMeetingPatterns(participant, period)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to analyze patterns: %v", err)), nil
	}

	text := fmt.Sprintf("Meeting patterns for %s, %s to %s:\n\n",
		report.Participant, period.Start.Format(time.RFC3339), period.End.Format(time.RFC3339))
	text += fmt.Sprintf("  %d meeting(s), %d minutes total, %.1f minutes average\n",
		report.MeetingCount, report.TotalMinutes, report.AverageMinutes)

	if report.BusiestWeekday != "" {
		text += fmt.Sprintf("  Busiest weekday: %s\n", report.BusiestWeekday)
	}

	if len(report.ByWeekday) > 0 {
		text += "\nBy weekday:\n"
		days := make([]string, 0, len(report.ByWeekday))
		for d := range report.ByWeekday {
			days = append(days, d)
		}
		sort.Strings(days)
		for _, d := range days {
			text += fmt.Sprintf("  %s: %d\n", d, report.ByWeekday[d])
		}
	}

	if len(report.ByHour) > 0 {
		text += "\nBy local starting hour:\n"
		hours := make([]int, 0, len(report.ByHour))
		for h := range report.ByHour {
			hours = append(hours, h)
		}
		sort.Ints(hours)
		for _, h := range hours {
			text += fmt.Sprintf("  %02d:00: %d\n", h, report.ByHour[h])
		}
	}

	if len(report.Insights) > 0 {
		text += "\nInsights:\n"
		for _, insight := range report.Insights {
			text += fmt.Sprintf("  - %s\n", insight)
		}
	}

	return mcp.NewToolResultText(text), nil
}

func handleOptimizeSchedule(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	participant, ok := args["participant"].(string)
	if !ok || participant == "" {
		return mcp.NewToolResultError("participant is required"), nil
	}

	period, result := periodFromArgs(args)
	if result != nil {
		return result, nil
	}

	report, err := sc.Planner().OptimizeSchedule(participant, period)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to optimize schedule: %v", err)), nil
	}

	if len(report.Recommendations) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No schedule problems found for %s in the given period", participant)), nil
	}

	text := fmt.Sprintf("Found %d recommendation(s) for %s:\n\n", len(report.Recommendations), participant)
	for i, r := range report.Recommendations {
		text += fmt.Sprintf("%d. [%s] %s: %s\n", i+1, strings.ToUpper(r.Priority), r.Category, r.Detail)
	}

	return mcp.NewToolResultText(text), nil
}

// periodFromArgs parses the periodStart/periodEnd pair shared by the
// analysis tools. The second return value is a non-nil error result
// when parsing failed.
func periodFromArgs(args map[string]interface{}) (schedule.Interval, *mcp.CallToolResult) {
	periodStart, err := common.TimeFromArgs(args, "periodStart")
	if err != nil {
		return schedule.Interval{}, mcp.NewToolResultError(err.Error())
	}
	periodEnd, err := common.TimeFromArgs(args, "periodEnd")
	if err != nil {
		return schedule.Interval{}, mcp.NewToolResultError(err.Error())
	}
	return schedule.Interval{Start: periodStart, End: periodEnd}, nil
}
