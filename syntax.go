package diffstyle

// LanguageDetector is the syntax database consulted by the renderer.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path,
	// or an empty string if the language cannot be determined.
	// Accepts paths with or without "a/" or "b/" prefixes (common in diffs).
	DetectFromPath(path string) string
	// Languages returns the names of all known languages.
	Languages() []string
}
