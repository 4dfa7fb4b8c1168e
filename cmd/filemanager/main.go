// Package main provides the filemanager CLI, a recipe-processor step
// that turns a downloaded file into a located disk image.
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "run":
		runNormalize(ctx, os.Args[2:])
	case "formats":
		runFormats(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`filemanager - Normalizes a downloaded file into a disk image

Usage:
  filemanager <command> [options]

Commands:
  run       Normalize a downloaded file and locate the disk image
  formats   List recognized archive formats and their suffixes

Use "filemanager <command> --help" for more information about a command.`)
}
