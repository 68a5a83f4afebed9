package scheduling_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/server"
)

// RegisterSchedulingTools registers all scheduling-related tools with the MCP server
func RegisterSchedulingTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register participant directory tools
	if err := RegisterParticipantTools(s, sc); err != nil {
		return fmt.Errorf("failed to register participant tools: %w", err)
	}

	// Register meeting lifecycle tools
	if err := RegisterMeetingTools(s, sc); err != nil {
		return fmt.Errorf("failed to register meeting tools: %w", err)
	}

	// Register slot search and conflict tools
	if err := RegisterSlotTools(s, sc); err != nil {
		return fmt.Errorf("failed to register slot tools: %w", err)
	}

	// Register workload and effectiveness analysis tools
	if err := RegisterAnalysisTools(s, sc); err != nil {
		return fmt.Errorf("failed to register analysis tools: %w", err)
	}

	return nil
}
