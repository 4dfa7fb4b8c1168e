package entities

import (
	"fmt"
	"strings"
)

// Step error types for precise error handling. Every one of these is
// terminal for the invocation; nothing is retried internally.

// ConfigurationError reports a missing or invalid option value
type ConfigurationError struct {
	Option string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for option %q: %s", e.Option, e.Reason)
}

// NewConfigurationError creates a ConfigurationError
func NewConfigurationError(option, reason string) *ConfigurationError {
	return &ConfigurationError{Option: option, Reason: reason}
}

// NewInvalidFormatError creates a ConfigurationError enumerating the
// valid archive format tags.
func NewInvalidFormatError(format ArchiveFormat) *ConfigurationError {
	valid := ValidFormats()
	names := make([]string, len(valid))
	for i, f := range valid {
		names[i] = f.String()
	}
	return &ConfigurationError{
		Option: "archive_format",
		Reason: fmt.Sprintf("%q is not valid, must be one of %s", format, strings.Join(names, ", ")),
	}
}

// MissingInputError reports that the source artifact does not exist
type MissingInputError struct {
	Path string
	Err  error
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("file from previous processor (pathname: %s) does not exist", e.Path)
}

func (e *MissingInputError) Unwrap() error {
	return e.Err
}

// NewMissingInputError creates a MissingInputError
func NewMissingInputError(path string, err error) *MissingInputError {
	return &MissingInputError{Path: path, Err: err}
}

// CleanupError reports a failed deletion while purging the destination
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("can't remove %s: %v", e.Path, e.Err)
}

func (e *CleanupError) Unwrap() error {
	return e.Err
}

// NewCleanupError creates a CleanupError
func NewCleanupError(path string, err error) *CleanupError {
	return &CleanupError{Path: path, Err: err}
}

// UnrecognizedFormatError reports a filename whose suffix matches no
// known archive format.
type UnrecognizedFormatError struct {
	Filename string
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("can't guess archive format for filename %q", e.Filename)
}

// NewUnrecognizedFormatError creates an UnrecognizedFormatError
func NewUnrecognizedFormatError(filename string) *UnrecognizedFormatError {
	return &UnrecognizedFormatError{Filename: filename}
}

// ExtractionError reports a failure from the extraction collaborator
type ExtractionError struct {
	Format ArchiveFormat
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction of %s archive %s failed: %v", e.Format, e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates an ExtractionError
func NewExtractionError(format ArchiveFormat, source string, err error) *ExtractionError {
	return &ExtractionError{Format: format, Source: source, Err: err}
}

// NotFoundError reports that no disk image was located after processing
type NotFoundError struct {
	Directory string
	Name      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unable to locate a disk image for %q in %s after processing", e.Name, e.Directory)
}

// NewNotFoundError creates a NotFoundError
func NewNotFoundError(directory, name string) *NotFoundError {
	return &NotFoundError{Directory: directory, Name: name}
}
