// Package orchestrators coordinates the normalization workflow across
// the domain services and gateways.
package orchestrators

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jcschwartz84/Recipes/internal/domain/entities"
	"github.com/jcschwartz84/Recipes/internal/domain/interfaces"
	"github.com/jcschwartz84/Recipes/internal/domain/services"
)

// Canonicalizer interface for renaming downloads to canonical names
type Canonicalizer interface {
	Canonicalize(path string) (string, error)
}

// DestinationPreparer interface for creating and purging the destination
type DestinationPreparer interface {
	Prepare(destination string, purge bool) error
}

// ImageLocator interface for finding the produced disk image
type ImageLocator interface {
	Locate(destination, name string) (string, error)
}

// SignatureVerifier interface for the optional pre-flight signature check
type SignatureVerifier interface {
	ImportKeyFiles(paths []string) error
	VerifyDetached(filePath, signaturePath string) error
}

// NormalizeOrchestrator runs the complete normalization step: resolve
// the input, prepare the destination, canonicalize the filename, detect
// the archive format, extract, and locate the disk image.
type NormalizeOrchestrator struct {
	canonicalizer Canonicalizer
	preparer      DestinationPreparer
	detector      *services.FormatDetector
	extractor     interfaces.Extractor
	locator       ImageLocator
	verifier      SignatureVerifier
	logger        interfaces.Logger
}

// NewNormalizeOrchestrator creates a new normalize orchestrator
func NewNormalizeOrchestrator(
	canonicalizer Canonicalizer,
	preparer DestinationPreparer,
	detector *services.FormatDetector,
	extractor interfaces.Extractor,
	locator ImageLocator,
	verifier SignatureVerifier,
	logger interfaces.Logger,
) *NormalizeOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &NormalizeOrchestrator{
		canonicalizer: canonicalizer,
		preparer:      preparer,
		detector:      detector,
		extractor:     extractor,
		locator:       locator,
		verifier:      verifier,
		logger:        logger,
	}
}

// NormalizeResult contains the result of a normalization run
type NormalizeResult struct {
	Artifact        *entities.NormalizedArtifact
	ExtractDuration time.Duration
	TotalDuration   time.Duration
}

// Normalize executes the step against a host-supplied environment.
// Every failure is terminal; filesystem mutations made before the
// failure (purge, rename, partial extraction) are not rolled back.
func (o *NormalizeOrchestrator) Normalize(ctx context.Context, env *entities.Env) (*NormalizeResult, error) {
	startTime := time.Now()

	// Step 1: resolve the source artifact
	pathname := env.Get(entities.OptionArchivePath)
	if pathname == "" {
		pathname = env.Get(entities.OptionPathname)
	}
	if pathname == "" {
		return nil, entities.NewConfigurationError(entities.OptionPathname, "expected a 'pathname' input variable but none is set")
	}
	if _, err := os.Stat(pathname); err != nil {
		return nil, entities.NewMissingInputError(pathname, err)
	}

	// Optional pre-flight signature check, before any mutation.
	if sigPath := env.Get(entities.OptionSignaturePath); sigPath != "" {
		if err := o.verifySignature(pathname, sigPath, env); err != nil {
			return nil, err
		}
		o.logger.Info("Verified signature", interfaces.F("file", pathname))
	}

	// Step 2: prepare the destination directory
	destination, err := o.resolveDestination(env)
	if err != nil {
		return nil, err
	}
	if err := o.preparer.Prepare(destination, env.GetBool(entities.OptionPurgeDestination)); err != nil {
		return nil, err
	}

	// Step 3: canonicalize the filename
	canonical, err := o.canonicalizer.Canonicalize(pathname)
	if err != nil {
		return nil, err
	}

	name := env.Get(entities.OptionName)
	artifact := &entities.NormalizedArtifact{
		Name:       name,
		SourcePath: canonical,
	}
	result := &NormalizeResult{Artifact: artifact}

	if o.detector.IsDiskImage(canonical) {
		// Step 4a: the source already is the disk image
		artifact.DiskImagePath = canonical
	} else {
		// Step 4b: detect the archive format
		format, err := o.detector.Detect(filepath.Base(canonical))
		if err != nil {
			return nil, err
		}
		artifact.Format = format
		o.logger.Info("Guessed archive format",
			interfaces.F("format", format),
			interfaces.F("filename", filepath.Base(canonical)))

		// Step 5: extract through the collaborator
		extractStart := time.Now()
		if err := o.extractor.Extract(ctx, format, canonical, destination); err != nil {
			return nil, entities.NewExtractionError(format, canonical, err)
		}
		result.ExtractDuration = time.Since(extractStart)
		o.logger.Info("Unarchived",
			interfaces.F("source", canonical),
			interfaces.F("destination", destination))

		// Step 6: locate the disk image among the extracted files
		imagePath, err := o.locator.Locate(destination, name)
		if err != nil {
			return nil, err
		}
		artifact.DiskImagePath = imagePath
	}

	o.logger.Info("Found disk image",
		interfaces.F("dmg_path", artifact.DiskImagePath),
		interfaces.F("source", canonical))

	result.TotalDuration = time.Since(startTime)
	return result, nil
}

// resolveDestination picks the destination directory, defaulting to the
// recipe cache directory joined with the step name.
func (o *NormalizeOrchestrator) resolveDestination(env *entities.Env) (string, error) {
	if destination := env.Get(entities.OptionDestinationPath); destination != "" {
		return destination, nil
	}
	cacheDir := env.Get(entities.OptionRecipeCacheDir)
	if cacheDir == "" {
		return "", entities.NewConfigurationError(
			entities.OptionDestinationPath,
			fmt.Sprintf("not set and no %s available for the default", entities.OptionRecipeCacheDir))
	}
	return filepath.Join(cacheDir, env.Get(entities.OptionName)), nil
}

// verifySignature runs the optional detached-signature check
func (o *NormalizeOrchestrator) verifySignature(pathname, sigPath string, env *entities.Env) error {
	if o.verifier == nil {
		return entities.NewConfigurationError(entities.OptionSignaturePath, "set but no signature verifier is configured")
	}
	keyPaths := env.GetList(entities.OptionGPGKeyPaths)
	if len(keyPaths) == 0 {
		return entities.NewConfigurationError(entities.OptionGPGKeyPaths, fmt.Sprintf("required when %s is set", entities.OptionSignaturePath))
	}
	if err := o.verifier.ImportKeyFiles(keyPaths); err != nil {
		return entities.NewConfigurationError(entities.OptionGPGKeyPaths, err.Error())
	}
	if err := o.verifier.VerifyDetached(pathname, sigPath); err != nil {
		return fmt.Errorf("signature check on %s failed: %w", pathname, err)
	}
	return nil
}
