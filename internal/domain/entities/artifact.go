package entities

// NormalizedArtifact is the result of one normalization run
type NormalizedArtifact struct {
	Name          string        // step name from the host environment
	SourcePath    string        // canonical source path after rename
	Format        ArchiveFormat // empty when the source was already a disk image
	DiskImagePath string        // located disk image, the step output
}

// AlreadyImage reports whether the source needed no extraction
func (a *NormalizedArtifact) AlreadyImage() bool {
	return a.Format == ""
}
