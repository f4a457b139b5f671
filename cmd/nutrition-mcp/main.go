// MCP server exposing the daily nutrition estimate to AI coding tools.
//
// Usage:
//
//	nutrition-mcp serve    # Start MCP server (stdio transport)
//	nutrition-mcp version  # Print the version
package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"lg/daily-nutrition-go-api/internal/nutritool"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := server.ServeStdio(nutritool.NewServer()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--version", "-v", "version":
		fmt.Printf("nutrition-mcp v%s\n", nutritool.Version)
	case "--help", "-h", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: nutrition-mcp <command>

Commands:
  serve     Start MCP server (stdio transport)
  version   Print the version
  help      Show this help`)
}
