// Package agenda_tools exposes agenda suggestion generation as an MCP
// tool on top of the agenda templates.
package agenda_tools
