package scheduling_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/schedule"
	"github.com/teemow/meetfewer/internal/server"
	"github.com/teemow/meetfewer/internal/tools/common"
)

// RegisterMeetingTools registers meeting lifecycle tools with the MCP server
func RegisterMeetingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Create meeting tool
	createMeetingTool := mcp.NewTool("create_meeting",
		mcp.WithDescription("Create a meeting on the calendar. Without a preferred time the best available slot over the next 7 days is picked. Conflicts are reported but never block creation."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Meeting title"),
		),
		mcp.WithString("participants",
			mcp.Required(),
			mcp.Description("Comma-separated list of participant IDs. The first entry is the organizer. All participants must exist in the directory."),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Required(),
			mcp.Description("Meeting duration in minutes"),
		),
		mcp.WithString("preferredTime",
			mcp.Description("Preferred start time (RFC3339 format, e.g., '2025-06-10T14:00:00Z'). Omit to auto-pick the best slot."),
		),
		mcp.WithString("timezone",
			mcp.Description("Display timezone for the meeting (IANA name, default: the organizer's home timezone)"),
		),
		mcp.WithString("agenda",
			mcp.Description("Meeting agenda text"),
		),
	)

	s.AddTool(createMeetingTool, common.InstrumentedToolHandlerWithOperation("create_meeting", instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateMeeting(ctx, request, sc)
		}))

	// Cancel meeting tool
	cancelMeetingTool := mcp.NewTool("cancel_meeting",
		mcp.WithDescription("Cancel a scheduled meeting and remove it from the calendar"),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting to cancel"),
		),
	)

	s.AddTool(cancelMeetingTool, common.InstrumentedToolHandlerWithOperation("cancel_meeting", instrumentation.OperationRemove, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCancelMeeting(ctx, request, sc)
		}))

	// Reschedule meeting tool
	rescheduleMeetingTool := mcp.NewTool("reschedule_meeting",
		mcp.WithDescription("Move a meeting to a new start time, keeping its duration. Returns the replacement meeting with a fresh ID."),
		mcp.WithString("meetingId",
			mcp.Required(),
			mcp.Description("The ID of the meeting to reschedule"),
		),
		mcp.WithString("newStart",
			mcp.Required(),
			mcp.Description("New start time (RFC3339 format)"),
		),
	)

	s.AddTool(rescheduleMeetingTool, common.InstrumentedToolHandlerWithOperation("reschedule_meeting", instrumentation.OperationReschedule, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleRescheduleMeeting(ctx, request, sc)
		}))

	// List meetings tool
	listMeetingsTool := mcp.NewTool("list_meetings",
		mcp.WithDescription("List a participant's meetings, optionally restricted to a time window"),
		mcp.WithString("participant",
			mcp.Required(),
			mcp.Description("Participant ID whose meetings to list"),
		),
		mcp.WithString("windowStart",
			mcp.Description("Window start (RFC3339 format). Requires windowEnd."),
		),
		mcp.WithString("windowEnd",
			mcp.Description("Window end (RFC3339 format). Requires windowStart."),
		),
	)

	s.AddTool(listMeetingsTool, common.InstrumentedToolHandlerWithOperation("list_meetings", instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListMeetings(ctx, request, sc)
		}))

	return nil
}

func handleCreateMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || strings.TrimSpace(title) == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	participants := common.ListFromArgs(args, "participants")
	if len(participants) == 0 {
		return mcp.NewToolResultError("participants is required"), nil
	}

	durationMinutes, ok := args["durationMinutes"].(float64)
	if !ok || durationMinutes <= 0 {
		return mcp.NewToolResultError("durationMinutes is required and must be positive"), nil
	}
	duration := time.Duration(durationMinutes) * time.Minute

	var start time.Time
	autoScheduled := false
	if _, hasPreferred := args["preferredTime"]; hasPreferred {
		var err error
		start, err = common.TimeFromArgs(args, "preferredTime")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	} else {
		start = pickStartTime(sc, participants, duration)
		autoScheduled = true
	}
	end := start.Add(duration)

	timezone, _ := args["timezone"].(string)
	if timezone == "" {
		if organizer, err := sc.Store().Participant(participants[0]); err == nil {
			timezone = organizer.Timezone
		}
	}
	agenda, _ := args["agenda"].(string)

	meeting, err := schedule.NewMeeting(title, participants, start, end, timezone, agenda)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid meeting: %v", err)), nil
	}

	if err := sc.Store().Add(meeting); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create meeting: %v", err)), nil
	}

	result := fmt.Sprintf("Meeting created: %s\n", meeting.ID)
	if autoScheduled {
		result += "  (auto-scheduled: no preferred time given)\n"
	}
	result += fmt.Sprintf("  Title: %s\n", meeting.Title)
	result += fmt.Sprintf("  Time: %s to %s\n", meeting.Start.Format(time.RFC3339), meeting.End.Format(time.RFC3339))
	result += fmt.Sprintf("  Organizer: %s\n", meeting.Organizer())
	result += fmt.Sprintf("  Participants: %s\n", strings.Join(meeting.Participants, ", "))

	// Conflicts are advisory: the meeting is already on the calendar,
	// the report just tells the caller what it collides with.
	reports, err := sc.Planner().DetectSchedulingConflicts(meeting.Participants, meeting.Interval(), meeting.ID)
	if err == nil {
		result += formatConflictReports(ctx, sc, reports)
	}

	return mcp.NewToolResultText(result), nil
}

// pickStartTime finds the best available slot over the next search
// horizon. Falls back to tomorrow morning when nothing qualifies, since
// creation must still proceed (conflicts stay advisory either way).
func pickStartTime(sc *server.ServerContext, participants []string, duration time.Duration) time.Time {
	now := time.Now().UTC()
	window := schedule.Interval{Start: now, End: now.AddDate(0, 0, defaultSearchDays)}

	slots, err := sc.Planner().FindOptimalSlots(participants, duration, window, 1)
	if err == nil && len(slots) > 0 {
		return slots[0].Slot.Start
	}
	return now.AddDate(0, 0, 1).Add(10 * time.Hour)
}

func handleCancelMeeting(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	meetingID, ok := args["meetingId"].(string)
	if !ok || meetingID == "" {
		return mcp.NewToolResultError("meetingId is required"), nil
	}

	meeting, err := sc.Store().Remove(meetingID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to cancel meeting: %v", err)), nil
	}

	result := fmt.Sprintf("Meeting cancelled: %s\n", meeting.ID)
	result += fmt.Sprintf("  Title: %s\n", meeting.Title)
	result += fmt.Sprintf("  Was scheduled: %s to %s\n", meeting.Start.Format(time.RFC3339), meeting.End.Format(time.RFC3339))

	return mcp.NewToolResultText(result), nil
}

func handleRescheduleMeeting(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	meetingID, ok := args["meetingId"].(string)
	if !ok || meetingID == "" {
		return mcp.NewToolResultError("meetingId is required"), nil
	}

	newStart, err := common.TimeFromArgs(args, "newStart")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	meeting, err := sc.Store().Reschedule(meetingID, newStart)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to reschedule meeting: %v", err)), nil
	}

	result := fmt.Sprintf("Meeting rescheduled: %s (was %s)\n", meeting.ID, meetingID)
	result += fmt.Sprintf("  Title: %s\n", meeting.Title)
	result += fmt.Sprintf("  New time: %s to %s\n", meeting.Start.Format(time.RFC3339), meeting.End.Format(time.RFC3339))

	reports, err := sc.Planner().DetectSchedulingConflicts(meeting.Participants, meeting.Interval(), meeting.ID)
	if err == nil {
		result += formatConflictReports(ctx, sc, reports)
	}

	return mcp.NewToolResultText(result), nil
}

func handleListMeetings(_ context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	participant, ok := args["participant"].(string)
	if !ok || participant == "" {
		return mcp.NewToolResultError("participant is required"), nil
	}

	var window *schedule.Interval
	_, hasStart := args["windowStart"]
	_, hasEnd := args["windowEnd"]
	if hasStart || hasEnd {
		windowStart, err := common.TimeFromArgs(args, "windowStart")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		windowEnd, err := common.TimeFromArgs(args, "windowEnd")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		window = &schedule.Interval{Start: windowStart, End: windowEnd}
	}

	meetings, err := sc.Store().MeetingsFor(participant, window)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list meetings: %v", err)), nil
	}

	if len(meetings) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No meetings found for %s", participant)), nil
	}

	result := fmt.Sprintf("Found %d meeting(s) for %s:\n\n", len(meetings), participant)
	for i, m := range meetings {
		result += fmt.Sprintf("%d. %s (%s)\n", i+1, m.Title, m.ID)
		result += fmt.Sprintf("   %s to %s\n", m.Start.Format(time.RFC3339), m.End.Format(time.RFC3339))
		result += fmt.Sprintf("   Organizer: %s, %d participant(s)\n", m.Organizer(), len(m.Participants))
		if m.Agenda != "" {
			result += "   Agenda: present\n"
		}
	}

	return mcp.NewToolResultText(result), nil
}
