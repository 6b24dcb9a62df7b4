package host

import (
	"path/filepath"
	"strings"
)

// Slicer only executes Python, other ids are reported so the user can tell
// they sent the wrong buffer.
var extToLanguage = map[string]string{
	"py":  "python",
	"pyw": "python",
	"pyi": "python",
	"ipy": "python",

	"sh":   "shell",
	"bash": "shell",

	"js":   "javascript",
	"json": "json",
	"txt":  "plaintext",
	"md":   "markdown",
	"mrml": "xml",
	"xml":  "xml",
	"yaml": "yaml",
	"yml":  "yaml",
}

// LanguageFor guesses a language id from a file name.
func LanguageFor(name string) string {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return "plaintext"
	}
	if lang, ok := extToLanguage[strings.ToLower(ext)]; ok {
		return lang
	}
	return "plaintext"
}
