package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for drivecaffeine resources.
	uriScheme = "drivecaffeine://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "status",
		Name:        "status",
		Description: "Probe interval and drives being kept awake",
		MIMEType:    "application/json",
	}, s.handleStatusResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "drives",
		Name:        "drives",
		Description: "Mounted drives and their keep-alive state",
		MIMEType:    "application/json",
	}, s.handleDrivesResource)
}

// handleStatusResource returns the registry status.
func (s *Server) handleStatusResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.status())
}

// handleDrivesResource returns the drive list.
func (s *Server) handleDrivesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Drives == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	drives, err := s.listDrives(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing drives: %w", err)
	}

	return jsonResource(req.Params.URI, drives)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
