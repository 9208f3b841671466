package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"vaultdiff/internal/adapters/filesystem"
	mcpadapter "vaultdiff/internal/adapters/mcp"
	"vaultdiff/internal/config"
)

func main() {
	cfg, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("vaultdiff-mcp: %v", err)
	}

	vaultFlag := flag.String("vault", cfg.VaultPath(), "path to the vault")
	specsFlag := flag.String("specs", cfg.Vault.SpecsDir, "vault-relative specs directory")
	flag.Parse()

	repo := filesystem.NewRepository(config.ExpandPath(*vaultFlag))

	mcpServer := server.NewMCPServer(
		"vaultdiff-mcp",
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

	mcpadapter.RegisterReadTools(mcpServer, repo, *specsFlag)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("vaultdiff-mcp: %v", err)
	}
}
