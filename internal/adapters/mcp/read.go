package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultdiff/internal/application/commands"
	"vaultdiff/internal/ports"
)

// RegisterReadTools adds all read-only vault tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.VaultRepository, specsDir string) {
	s.AddTool(listFilesTool(), listFilesHandler(repo))
	s.AddTool(listConflictsTool(), listConflictsHandler(repo))
	s.AddTool(readSpecTool(), readSpecHandler(repo, specsDir))
}

// --- list_files ---

func listFilesTool() mcp.Tool {
	return mcp.NewTool("list_files",
		mcp.WithDescription("List files in the vault as slash-separated relative paths. Hidden and trashed files are excluded."),
		mcp.WithString("filter",
			mcp.Description("Case-insensitive substring to filter paths by. Omit to list every file."),
		),
	)
}

func listFilesHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		filter := strings.ToLower(req.GetString("filter", ""))

		files, err := repo.List()
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		n := 0
		for _, f := range files {
			if filter != "" && !strings.Contains(strings.ToLower(f.Path), filter) {
				continue
			}
			sb.WriteString(f.Path)
			sb.WriteByte('\n')
			n++
		}
		if n == 0 {
			return mcp.NewToolResultText("No files found."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list_conflicts ---

func listConflictsTool() mcp.Tool {
	return mcp.NewTool("list_conflicts",
		mcp.WithDescription("Scan the vault for sync-conflict files and pair each with its original. Returns one 'original <- conflict' line per pair."),
	)
}

func listConflictsHandler(repo ports.VaultRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		pairs, err := commands.NewFindConflictsCommand(repo).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(pairs) == 0 {
			return mcp.NewToolResultText("No sync conflicts found."), nil
		}

		var sb strings.Builder
		for _, p := range pairs {
			fmt.Fprintf(&sb, "%s <- %s\n", p.Original.Path, p.Conflict.Path)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_spec ---

func readSpecTool() mcp.Tool {
	return mcp.NewTool("read_spec",
		mcp.WithDescription("Resolve a numbered diff spec (spec-0.yaml through spec-9.yaml in the specs directory) to the pair of vault files it names."),
		mcp.WithNumber("index",
			mcp.Description("Spec index between 0 and 9, selecting spec-<index>.yaml."),
			mcp.Required(),
		),
	)
}

func readSpecHandler(repo ports.VaultRepository, specsDir string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index, err := req.RequireInt("index")
		if err != nil {
			return toolError(err)
		}

		file1, file2, err := commands.NewReadSpecCommand(repo, specsDir, index).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("file1: %s\nfile2: %s\n", file1.Path, file2.Path)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
