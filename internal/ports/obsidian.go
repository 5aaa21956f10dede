package ports

// ObsidianOpener opens vault documents in Obsidian
type ObsidianOpener interface {
	// OpenFile opens filePath through the obsidian:// URI scheme.
	// A non-empty heading jumps to that heading inside the note.
	OpenFile(filePath, heading string) error
}
