package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/drivecaffeine/internal/core/domain"
)

// defaultHistoryLimit is used when the history tool is called without a limit.
const defaultHistoryLimit = 20

// DriveInput identifies one drive.
type DriveInput struct {
	Drive string `json:"drive" jsonschema:"root path of the drive, e.g. E:\\ or /media/usb"`
}

// IntervalInput selects the probe interval.
type IntervalInput struct {
	Minutes int `json:"minutes" jsonschema:"minutes between probes: 1, 3, 5 or 10"`
}

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

// HistoryInput is the input schema for the probe_history tool.
type HistoryInput struct {
	Drive string `json:"drive,omitempty" jsonschema:"root path of the drive; empty for all drives"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 20)"`
}

// StatusOutput describes the registry state.
type StatusOutput struct {
	Interval        string   `json:"interval"`
	IntervalMinutes int      `json:"interval_minutes"`
	ActiveDrives    []string `json:"active_drives"`
}

// ToggleOutput is the result of toggle_drive.
type ToggleOutput struct {
	Drive   string `json:"drive"`
	Enabled bool   `json:"enabled"`
}

// DriveOutput represents a single drive.
type DriveOutput struct {
	Root      string `json:"root"`
	Label     string `json:"label,omitempty"`
	FSType    string `json:"fs_type,omitempty"`
	Removable bool   `json:"removable"`
	Mounted   bool   `json:"mounted"`
	Enabled   bool   `json:"enabled"`
}

// DrivesOutput is the result of list_drives.
type DrivesOutput struct {
	Drives []DriveOutput `json:"drives"`
}

// ProbeOutput represents a single probe result.
type ProbeOutput struct {
	Drive      string `json:"drive"`
	StartedAt  string `json:"started_at"`
	DurationMS int64  `json:"duration_ms"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
}

// HistoryOutput is the result of probe_history.
type HistoryOutput struct {
	Results []ProbeOutput `json:"results"`
	Count   int           `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "status",
		Description: "Show the probe interval and the drives being kept awake",
	}, s.handleStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "enable_drive",
		Description: "Start keeping a drive awake. Enabling an enabled drive does nothing",
	}, s.handleEnable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "disable_drive",
		Description: "Stop keeping a drive awake",
	}, s.handleDisable)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "toggle_drive",
		Description: "Enable a disabled drive or disable an enabled one",
	}, s.handleToggle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "set_interval",
		Description: "Set the minutes between probes for every drive (1, 3, 5 or 10)",
	}, s.handleSetInterval)

	if s.ports.Drives != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_drives",
			Description: "List mounted drives and whether each is kept awake",
		}, s.handleListDrives)
	}

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "probe_history",
			Description: "Show recent keep-alive probe results",
		}, s.handleHistory)
	}
}

func (s *Server) status() StatusOutput {
	st := s.ports.Registry.Status()
	drives := make([]string, len(st.ActiveDrives))
	for i, d := range st.ActiveDrives {
		drives[i] = d.String()
	}
	return StatusOutput{
		Interval:        st.Interval.Description(),
		IntervalMinutes: st.Interval.Minutes(),
		ActiveDrives:    drives,
	}
}

// handleStatus handles the status tool invocation.
func (s *Server) handleStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	return nil, s.status(), nil
}

// handleEnable handles the enable_drive tool invocation.
func (s *Server) handleEnable(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DriveInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	drive := domain.NewDriveID(input.Drive)
	if drive.IsZero() {
		return nil, StatusOutput{}, domain.ErrInvalidInput
	}
	if err := s.ports.Registry.Enable(drive); err != nil {
		return nil, StatusOutput{}, err
	}
	if err := s.rememberDrive(drive, true); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, s.status(), nil
}

// handleDisable handles the disable_drive tool invocation.
func (s *Server) handleDisable(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DriveInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	drive := domain.NewDriveID(input.Drive)
	if err := s.ports.Registry.Disable(drive); err != nil {
		return nil, StatusOutput{}, err
	}
	if err := s.rememberDrive(drive, false); err != nil {
		return nil, StatusOutput{}, err
	}
	return nil, s.status(), nil
}

// handleToggle handles the toggle_drive tool invocation.
func (s *Server) handleToggle(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input DriveInput,
) (*mcp.CallToolResult, ToggleOutput, error) {
	drive := domain.NewDriveID(input.Drive)
	enabled, err := s.ports.Registry.Toggle(drive)
	if err != nil {
		return nil, ToggleOutput{}, err
	}
	if err := s.rememberDrive(drive, enabled); err != nil {
		return nil, ToggleOutput{}, err
	}
	return nil, ToggleOutput{Drive: drive.String(), Enabled: enabled}, nil
}

// handleSetInterval handles the set_interval tool invocation.
func (s *Server) handleSetInterval(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input IntervalInput,
) (*mcp.CallToolResult, StatusOutput, error) {
	interval, err := domain.IntervalFromMinutes(input.Minutes)
	if err != nil {
		return nil, StatusOutput{}, err
	}
	if err := s.ports.Registry.SetInterval(interval); err != nil {
		return nil, StatusOutput{}, err
	}
	if s.ports.Settings != nil {
		if err := s.ports.Settings.SetInterval(interval); err != nil {
			return nil, StatusOutput{}, fmt.Errorf("saving interval: %w", err)
		}
	}
	return nil, s.status(), nil
}

// rememberDrive mirrors a drive's keep-alive state into the startup
// preferences.
func (s *Server) rememberDrive(drive domain.DriveID, enabled bool) error {
	if s.ports.Settings == nil || drive.IsZero() {
		return nil
	}
	var err error
	if enabled {
		err = s.ports.Settings.AddDrive(drive)
	} else if err = s.ports.Settings.RemoveDrive(drive); errors.Is(err, domain.ErrNotFound) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("saving drive %s: %w", drive, err)
	}
	return nil
}

// handleListDrives handles the list_drives tool invocation.
func (s *Server) handleListDrives(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, DrivesOutput, error) {
	drives, err := s.listDrives(ctx)
	if err != nil {
		return nil, DrivesOutput{}, err
	}
	return nil, DrivesOutput{Drives: drives}, nil
}

func (s *Server) listDrives(ctx context.Context) ([]DriveOutput, error) {
	statuses, err := s.ports.Drives.List(ctx)
	if err != nil {
		return nil, err
	}

	drives := make([]DriveOutput, len(statuses))
	for i, st := range statuses {
		drives[i] = DriveOutput{
			Root:      st.Drive.ID.String(),
			Label:     st.Drive.Label,
			FSType:    st.Drive.FSType,
			Removable: st.Drive.Removable,
			Mounted:   st.Mounted,
			Enabled:   st.Enabled,
		}
	}
	return drives, nil
}

// handleHistory handles the probe_history tool invocation.
func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	if s.ports.History == nil {
		return nil, HistoryOutput{}, ErrHistoryDisabled
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	results, err := s.ports.History.Recent(ctx, domain.NewDriveID(input.Drive), limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}

	output := HistoryOutput{
		Results: make([]ProbeOutput, len(results)),
		Count:   len(results),
	}
	for i := range results {
		output.Results[i] = ProbeOutput{
			Drive:      results[i].DriveID.String(),
			StartedAt:  results[i].StartedAt.Format("2006-01-02T15:04:05Z07:00"),
			DurationMS: results[i].Duration().Milliseconds(),
			Outcome:    results[i].Outcome.String(),
			Error:      results[i].Error,
		}
	}

	return nil, output, nil
}
