package mcp

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"jarscope/internal/application"
	"jarscope/internal/ports"
)

// Deps holds what the tools need to serve requests. One Session is shared by
// every request of a server, so history spans the whole MCP connection.
type Deps struct {
	Session  *application.Session
	Source   ports.FileSource
	Archives ports.ArchiveReader
}

func toolError(err error) (*mcp.CallToolResult, error) {
	notice := application.NoticeFor(err)
	if !notice.IsError {
		return mcp.NewToolResultText(notice.String()), nil
	}
	log.Printf("tool error: %v", err)
	return mcp.NewToolResultError(notice.String()), nil
}

// readArchive reads path through the input gate and checks that it is a .jar
func readArchive(source ports.FileSource, path string) ([]byte, error) {
	kind, err := application.ValidateInputName(filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if kind != application.InputArchive {
		return nil, &application.ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("%s is not a .jar archive", filepath.Base(path)),
		}
	}
	return source.ReadInput(path)
}

func pathArg() mcp.ToolOption {
	return mcp.WithString("path",
		mcp.Description("Path to a .jar archive on the server's filesystem"),
		mcp.Required(),
	)
}

// RegisterReadTools adds the archive inspection tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(listMembersTool(), listMembersHandler(deps))
	s.AddTool(treeTool(), treeHandler(deps))
}

// --- list_members ---

func listMembersTool() mcp.Tool {
	return mcp.NewTool("list_members",
		mcp.WithDescription("List the .class entries of a JAR archive in archive order."),
		pathArg(),
	)
}

func listMembersHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if err := application.ValidateRequired("path", path); err != nil {
			return toolError(err)
		}

		data, err := readArchive(deps.Source, path)
		if err != nil {
			return toolError(err)
		}
		members, err := deps.Archives.ListMembers(data)
		if err != nil {
			return toolError(err)
		}
		if len(members) == 0 {
			return toolError(application.ErrEmptyArchive)
		}
		return mcp.NewToolResultText(strings.Join(members, "\n") + "\n"), nil
	}
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display the .class entries of a JAR archive as a package tree."),
		pathArg(),
	)
}

func treeHandler(deps Deps) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if err := application.ValidateRequired("path", path); err != nil {
			return toolError(err)
		}

		data, err := readArchive(deps.Source, path)
		if err != nil {
			return toolError(err)
		}
		members, err := deps.Archives.ListMembers(data)
		if err != nil {
			return toolError(err)
		}
		if len(members) == 0 {
			return toolError(application.ErrEmptyArchive)
		}

		var sb strings.Builder
		renderTree(&sb, application.BuildPathTree(members).Forest(), "")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, entries []application.TreeEntry, prefix string) {
	for _, e := range entries {
		if e.IsDirectory {
			fmt.Fprintf(sb, "%s%s/\n", prefix, e.Name)
			renderTree(sb, e.Children, prefix+"  ")
			continue
		}
		fmt.Fprintf(sb, "%s%s\n", prefix, e.Name)
	}
}
