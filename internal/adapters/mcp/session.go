package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jarscope/internal/application"
	"jarscope/internal/application/commands"
)

// RegisterSessionTools adds the decompile and history tools to the MCP server.
func RegisterSessionTools(s *server.MCPServer, deps Deps) {
	s.AddTool(decompileTool(), decompileHandler(deps))
	s.AddTool(historyTool(), historyHandler(deps))
	s.AddTool(loadHistoryTool(), loadHistoryHandler(deps))
	s.AddTool(clearHistoryTool(), clearHistoryHandler(deps))
	s.AddTool(exportTool(), exportHandler(deps))
}

// --- decompile ---

func decompileTool() mcp.Tool {
	return mcp.NewTool("decompile",
		mcp.WithDescription("Produce a simplified Java source view of a .class file, or of one class inside a .jar (the first class when no member is given). The view is synthesized from markers found in the bytes, not from real bytecode analysis."),
		mcp.WithString("path",
			mcp.Description("Path to a .jar or .class file on the server's filesystem"),
			mcp.Required(),
		),
		mcp.WithString("member",
			mcp.Description("Archive member path (e.g. com/app/Main.class). Only valid for .jar files."),
		),
		mcp.WithBoolean("line_numbers", mcp.Description("Prefix lines with line numbers")),
		mcp.WithBoolean("remove_comments", mcp.Description("Drop comment lines")),
		mcp.WithBoolean("inline_simple", mcp.Description("Collapse one-line method bodies")),
		mcp.WithBoolean("simplify", mcp.Description("Drop implicit super() calls and extra blank lines")),
	)
}

func settingsFromRequest(req mcp.CallToolRequest) application.DisplaySettings {
	return application.DisplaySettings{
		ShowLineNumbers:     req.GetBool("line_numbers", false),
		RemoveComments:      req.GetBool("remove_comments", false),
		InlineSimpleMethods: req.GetBool("inline_simple", false),
		SimplifyExpressions: req.GetBool("simplify", false),
	}
}

func decompileHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		open := commands.NewOpenFileCommand(deps.Source, deps.Archives, req.GetString("path", ""))
		open.Member = req.GetString("member", "")

		// calls may overlap; each one answers with its own output
		ticket := deps.Session.Track()
		opened, err := open.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		result, _ := deps.Session.Record(ticket, opened)
		return mcp.NewToolResultText(settingsFromRequest(req).Format(result.Code)), nil
	}
}

// --- history ---

func historyTool() mcp.Tool {
	return mcp.NewTool("history",
		mcp.WithDescription("List recent decompilation results of this session, newest first."),
	)
}

func historyHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries := deps.Session.History()
		if len(entries) == 0 {
			return mcp.NewToolResultText("No results."), nil
		}
		var sb strings.Builder
		for _, r := range entries {
			fmt.Fprintf(&sb, "%s  %s  %s  %s\n", r.ID, r.FileName, r.SizeLabel, r.Timestamp.Format("2006-01-02 15:04:05"))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- load_history ---

func loadHistoryTool() mcp.Tool {
	return mcp.NewTool("load_history",
		mcp.WithDescription("Return the code of a previous result by its history ID."),
		mcp.WithString("id",
			mcp.Description("Result ID as shown by the history tool"),
			mcp.Required(),
		),
	)
}

func loadHistoryHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := deps.Session.LoadHistory(req.GetString("id", ""))
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Code), nil
	}
}

// --- clear_history ---

func clearHistoryTool() mcp.Tool {
	return mcp.NewTool("clear_history",
		mcp.WithDescription("Remove every entry from the session history."),
	)
}

func clearHistoryHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deps.Session.ClearHistory()
		return mcp.NewToolResultText("History cleared."), nil
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Save the current result as a .java file in the server's export directory and return the written path. Exported code never carries line numbers."),
		mcp.WithBoolean("remove_comments", mcp.Description("Drop comment lines")),
		mcp.WithBoolean("inline_simple", mcp.Description("Collapse one-line method bodies")),
		mcp.WithBoolean("simplify", mcp.Description("Drop implicit super() calls and extra blank lines")),
	)
}

func exportHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		current := deps.Session.State().Current
		path, err := commands.NewExportCommand(deps.Source, current, settingsFromRequest(req)).Execute()
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Saved " + path), nil
	}
}
