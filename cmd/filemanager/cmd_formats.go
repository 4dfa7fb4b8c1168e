package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
)

func runFormats(args []string) {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: filemanager formats\n\nList recognized archive formats and their filename suffixes.")
	}
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	suffixes := make(map[entities.ArchiveFormat][]string)
	for _, fsx := range entities.FormatSuffixes {
		suffixes[fsx.Format] = append(suffixes[fsx.Format], fsx.Suffix)
	}

	fmt.Printf("%-12s%s\n", "FORMAT", "SUFFIXES")
	for _, format := range entities.ValidFormats() {
		fmt.Printf("%-12s", format)
		for i, s := range suffixes[format] {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(s)
		}
		fmt.Println()
	}
	fmt.Printf("%-12s%s (no extraction)\n", "disk image", entities.DiskImageSuffix)
}
