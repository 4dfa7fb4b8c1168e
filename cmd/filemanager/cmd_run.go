package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/jcschwartz84/Recipes/internal/domain-adapters/gateways"
	orchestrators "github.com/jcschwartz84/Recipes/internal/domain-orchestrators"
	"github.com/jcschwartz84/Recipes/internal/domain/entities"
	"github.com/jcschwartz84/Recipes/internal/domain/interfaces"
	"github.com/jcschwartz84/Recipes/internal/domain/services"
	"github.com/jcschwartz84/Recipes/internal/external-adapters/extract"
	"github.com/jcschwartz84/Recipes/internal/external-adapters/yaml"
)

func runNormalize(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var (
		envFile       = fs.String("env-file", "", "YAML option file supplied by the host pipeline")
		pathname      = fs.String("pathname", "", "Path to the downloaded file")
		name          = fs.String("name", "", "Step name used for the default destination and image matching")
		cacheDir      = fs.String("cache-dir", "", "Recipe cache directory for the default destination")
		destination   = fs.String("destination", "", "Directory in which to extract archives")
		purge         = fs.Bool("purge", false, "Remove existing destination contents before unpacking")
		extractorMode = fs.String("extractor-mode", "", "Extractor selection: native or go (platform default when empty)")
		signature     = fs.String("signature", "", "Optional detached GPG signature to verify before processing")
		gpgKeys       = fs.String("gpg-keys", "", "Comma-separated public key files for signature verification")
		verbose       = fs.Bool("verbose", false, "Verbose progress output")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: filemanager run [options]

Normalize a downloaded file: rename away query-string suffixes, extract
recognized archives into the destination directory, and print the path
of the located disk image.

Examples:
  filemanager run --pathname dist/bundle.tar.gz --name MyRecipe --cache-dir ~/Library/AutoPkg/Cache
  filemanager run --env-file step.yml
  filemanager run --pathname app.zip --destination /tmp/out --purge

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(1)
	}

	// Host option file first, flags override.
	values := map[string]string{}
	if *envFile != "" {
		loaded, err := yaml.NewEnvLoader().LoadFile(*envFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		values = loaded
	}
	overrides := map[string]string{
		entities.OptionPathname:        *pathname,
		entities.OptionName:            *name,
		entities.OptionRecipeCacheDir:  *cacheDir,
		entities.OptionDestinationPath: *destination,
		entities.OptionExtractorMode:   *extractorMode,
		entities.OptionSignaturePath:   *signature,
		entities.OptionGPGKeyPaths:     *gpgKeys,
	}
	for key, value := range overrides {
		if value != "" {
			values[key] = value
		}
	}
	if *purge {
		values[entities.OptionPurgeDestination] = "true"
	}
	env := entities.NewEnv(values)

	mode := env.Get(entities.OptionExtractorMode)
	if mode == "" {
		mode = interfaces.DefaultExtractorMode(runtime.GOOS)
	}
	extractor, err := extract.ForMode(mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := &interfaces.StderrLogger{Verbose: *verbose}
	orchestrator := orchestrators.NewNormalizeOrchestrator(
		gateways.NewCanonicalizer(),
		gateways.NewDestinationPreparer(),
		services.NewFormatDetector(),
		extractor,
		gateways.NewImageLocator(),
		gateways.NewSignatureVerifier(),
		logger,
	)

	result, err := orchestrator.Normalize(ctx, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The single output value, on stdout for the host to capture.
	fmt.Printf("%s=%s\n", entities.OutputDiskImagePath, result.Artifact.DiskImagePath)
}
