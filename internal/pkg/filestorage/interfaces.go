package filestorage

// LineStorage stores named files made of text lines. A write replaces the
// whole file.
type LineStorage interface {
	// ReadLines returns the lines of name; a missing file yields no lines
	ReadLines(name string) ([]string, error)

	// WriteLines replaces name with the given lines
	WriteLines(name string, lines []string) error

	// GetFullPath returns the filesystem path backing name
	GetFullPath(name string) string
}
