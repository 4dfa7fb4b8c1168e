package entities

// ArchiveFormat identifies one of the archive container formats this
// step knows how to hand to an extractor.
type ArchiveFormat string

// Supported archive formats
const (
	FormatZip      ArchiveFormat = "zip"
	FormatTarGzip  ArchiveFormat = "tar_gzip"
	FormatTarBzip2 ArchiveFormat = "tar_bzip2"
	FormatTar      ArchiveFormat = "tar"
	FormatGzip     ArchiveFormat = "gzip"
)

// DiskImageSuffix is the extension of the terminal artifact this step
// must produce; files already carrying it skip extraction entirely.
const DiskImageSuffix = ".dmg"

// FormatSuffix maps one filename suffix to its archive format
type FormatSuffix struct {
	Suffix string
	Format ArchiveFormat
}

// FormatSuffixes is the closed suffix table, ordered so the most
// specific suffix matches first (.tar.gz must win over .tar).
var FormatSuffixes = []FormatSuffix{
	{".tar.bz2", FormatTarBzip2},
	{".tar.gz", FormatTarGzip},
	{".gzip", FormatGzip},
	{".tbz", FormatTarBzip2},
	{".tgz", FormatTarGzip},
	{".tar", FormatTar},
	{".zip", FormatZip},
}

// ValidFormats returns every recognized format tag
func ValidFormats() []ArchiveFormat {
	return []ArchiveFormat{FormatZip, FormatTarGzip, FormatTarBzip2, FormatTar, FormatGzip}
}

// Valid reports whether f is one of the recognized format tags
func (f ArchiveFormat) Valid() bool {
	for _, v := range ValidFormats() {
		if f == v {
			return true
		}
	}
	return false
}

func (f ArchiveFormat) String() string {
	return string(f)
}
