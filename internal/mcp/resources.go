// ABOUTME: MCP resource implementations for ftracker.
// ABOUTME: Provides ftracker://types and ftracker://sample resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/ftracker/internal/report"
	"github.com/harperreed/ftracker/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	typesURI  = "ftracker://types"
	sampleURI = "ftracker://sample"
)

func (s *Server) registerResources() {
	// ftracker://types - catalogue of workout codes and package layouts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         typesURI,
		Name:        "Training Types",
		Description: "Supported workout codes with their package fields",
		MIMEType:    "application/json",
	}, s.handleTypesResource)

	// ftracker://sample - summaries of the built-in sample packages
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         sampleURI,
		Name:        "Sample Report",
		Description: "Summaries computed from the built-in sample packages",
		MIMEType:    "application/json",
	}, s.handleSampleResource)
}

// Resource handlers

func (s *Server) handleTypesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(trainingTypes(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      typesURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleSampleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summaries, err := tracker.Summarize(tracker.DefaultPackages())
	if err != nil {
		return nil, fmt.Errorf("failed to summarize samples: %w", err)
	}

	data, err := report.Render(report.FormatJSON, summaries)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      sampleURI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
