package main

import (
	"context"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	flag "github.com/spf13/pflag"

	"jarscope/internal/adapters/filesystem"
	"jarscope/internal/adapters/memory"
	mcpadapter "jarscope/internal/adapters/mcp"
	"jarscope/internal/adapters/zipfile"
	"jarscope/internal/application"
	"jarscope/internal/config"
)

func main() {
	historySize := flag.Int("history-size", config.HistorySize(), "number of results kept in history")
	exportDir := flag.String("export-dir", config.ExportDir(), "directory for exported .java files")
	flag.Parse()

	history, err := memory.NewHistory(config.ClampHistorySize(*historySize))
	if err != nil {
		log.Fatalf("jarscope-mcp: %v", err)
	}

	deps := mcpadapter.Deps{
		Session:  application.NewSession(history),
		Source:   filesystem.NewSource(*exportDir),
		Archives: zipfile.NewReader(),
	}

	mcpServer := server.NewMCPServer(
		"jarscope-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterSessionTools(mcpServer, deps)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("jarscope-mcp: %v", err)
	}
}
