// Package mcp exposes the machine catalog as an MCP server, so agent hosts
// can list and run the built-in machines over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/gcamargo0/turingo"
	"github.com/gcamargo0/turingo/pkg/machines"
)

// RunReport mirrors the HTTP adapter's run response so both adapters present
// the same shape to callers.
type RunReport struct {
	Machine string   `json:"machine" jsonschema_description:"Name of the machine that was run"`
	Tape    []string `json:"tape" jsonschema_description:"Final materialized tape, leftmost cell first"`
	Begin   int      `json:"begin" jsonschema_description:"Logical coordinate of the first tape cell"`
	Head    int      `json:"head" jsonschema_description:"Final head coordinate"`
	State   string   `json:"state" jsonschema_description:"Label of the last active state"`
	Steps   int      `json:"steps" jsonschema_description:"Steps executed"`
	Outcome string   `json:"outcome" jsonschema_description:"halted or budget_exhausted"`
}

// Server wraps the catalog as an MCP server.
type Server struct {
	logger    *slog.Logger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(logger *slog.Logger) *Server {
	s := &Server{
		logger:    logger,
		mcpServer: server.NewMCPServer("turingo-mcp", strings.TrimSpace(turingo.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_machines",
		mcp.WithDescription("List the built-in Turing machines with their summaries."),
	), func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		type entry struct {
			Name         string `json:"name"`
			Summary      string `json:"summary"`
			DefaultInput string `json:"default_input,omitempty"`
		}
		defs := machines.All()
		out := make([]entry, 0, len(defs))
		for _, d := range defs {
			out = append(out, entry{Name: d.Name, Summary: d.Summary, DefaultInput: d.DefaultInput})
		}
		jsonBytes, _ := json.Marshal(out)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	runTool := mcp.NewTool("run_machine",
		mcp.WithDescription("Run a built-in Turing machine and return the final tape and outcome."),
		mcp.WithString("machine", mcp.Required(), mcp.Description("Catalog machine name (see list_machines)")),
		mcp.WithString("tape", mcp.Description("Initial tape, one symbol per character (optional, defaults per machine)")),
		mcp.WithNumber("max_steps", mcp.Description("Step budget (optional, default 1000)")),
		mcp.WithOutputSchema[RunReport](),
	)
	s.mcpServer.AddTool(runTool, mcp.NewStructuredToolHandler(s.handleRun))
}

func (s *Server) handleRun(ctx context.Context, _ mcp.CallToolRequest, args map[string]interface{}) (RunReport, error) {
	name, _ := args["machine"].(string)
	def, ok := machines.Get(name)
	if !ok {
		return RunReport{}, fmt.Errorf("unknown machine %q", name)
	}

	input, _ := args["tape"].(string)
	maxSteps := turingo.DefaultMaxSteps
	if n, ok := args["max_steps"].(float64); ok && n >= 0 {
		maxSteps = int(n)
	}

	tape, err := def.Tape(input)
	if err != nil {
		return RunReport{}, err
	}
	start, err := def.Build()
	if err != nil {
		return RunReport{}, fmt.Errorf("build failed: %w", err)
	}
	m, err := turingo.New(start, tape, 0)
	if err != nil {
		return RunReport{}, err
	}

	res, err := m.Run(ctx, maxSteps)
	if err != nil {
		s.logger.Error("mcp run failed", "machine", name, "err", err)
		return RunReport{}, fmt.Errorf("run failed: %w", err)
	}

	cells := make([]string, len(res.Tape))
	for i, c := range res.Tape {
		cells[i] = c.String()
	}
	return RunReport{
		Machine: def.Name,
		Tape:    cells,
		Begin:   res.Begin,
		Head:    res.Head,
		State:   res.State,
		Steps:   res.Steps,
		Outcome: string(res.Outcome),
	}, nil
}

func (s *Server) registerResources() {
	// EXPOSE: turingo://catalog
	s.mcpServer.AddResource(mcp.NewResource("turingo://catalog", "Machine Catalog",
		mcp.WithMIMEType("application/json"),
	), func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		jsonBytes, err := json.Marshal(machines.All())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "turingo://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
