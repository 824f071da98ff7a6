// ABOUTME: MCP tool implementations for ftracker.
// ABOUTME: Computes training summaries and lists the supported package layouts.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/ftracker/internal/tracker"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func (s *Server) registerTools() {
	// training_info
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "training_info",
		Description: "Compute distance, mean speed, and calories for one sensor package (RUN, WLK, or SWM)",
	}, s.handleTrainingInfo)

	// list_training_types
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_training_types",
		Description: "List supported workout codes and the values each package must carry",
	}, s.handleListTrainingTypes)
}

// Tool input/output types

type trainingInfoInput struct {
	Code string    `json:"code" jsonschema:"Workout code: RUN, WLK, or SWM"`
	Data []float64 `json:"data" jsonschema:"Package values in field order, see list_training_types"`
}

type trainingInfoOutput struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
	Message      string  `json:"message"`
}

type listTrainingTypesInput struct{}

type trainingTypeOutput struct {
	Code   string   `json:"code"`
	Name   string   `json:"name"`
	Arity  int      `json:"arity"`
	Fields []string `json:"fields"`
}

type listTrainingTypesOutput struct {
	Types []trainingTypeOutput `json:"types"`
}

// Tool handlers

func (s *Server) handleTrainingInfo(ctx context.Context, req *mcp.CallToolRequest, input trainingInfoInput) (*mcp.CallToolResult, trainingInfoOutput, error) {
	pkg := tracker.Package{Code: input.Code, Data: input.Data}

	training, err := tracker.ReadPackage(pkg.Code, pkg.Data)
	if err != nil {
		log.Warn().Err(err).Str("code", input.Code).Msg("mcp package rejected")
		return nil, trainingInfoOutput{}, fmt.Errorf("failed to read package: %w", err)
	}

	info := training.ShowTrainingInfo()
	return nil, trainingInfoOutput{
		ID:           pkg.ID().String()[:8],
		Code:         pkg.Code,
		TrainingType: info.TrainingType,
		Duration:     info.Duration,
		Distance:     info.Distance,
		Speed:        info.Speed,
		Calories:     info.Calories,
		Message:      info.Message(),
	}, nil
}

func (s *Server) handleListTrainingTypes(ctx context.Context, req *mcp.CallToolRequest, input listTrainingTypesInput) (*mcp.CallToolResult, listTrainingTypesOutput, error) {
	return nil, listTrainingTypesOutput{Types: trainingTypes()}, nil
}

func trainingTypes() []trainingTypeOutput {
	types := tracker.TrainingTypes()
	out := make([]trainingTypeOutput, 0, len(types))
	for _, t := range types {
		fields := make([]string, 0, len(t.Fields))
		for _, f := range t.Fields {
			fields = append(fields, f.Name)
		}
		out = append(out, trainingTypeOutput{
			Code:   t.Code,
			Name:   t.Name,
			Arity:  t.Arity(),
			Fields: fields,
		})
	}
	return out
}
