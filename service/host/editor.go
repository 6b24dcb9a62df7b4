package host

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"golang.org/x/term"
)

// DocumentEditor is an Editor whose document was loaded up front.
type DocumentEditor struct {
	text     string
	language string
	open     bool
}

var _ Editor = (*DocumentEditor)(nil)

func (e *DocumentEditor) ActiveText() (string, bool) {
	return e.text, e.open
}

func (e *DocumentEditor) LanguageID() string {
	return e.language
}

// NoEditor is the state with nothing open.
func NoEditor() *DocumentEditor {
	return &DocumentEditor{}
}

// NewDocumentEditor wraps already loaded text.
func NewDocumentEditor(name, text string) *DocumentEditor {
	return &DocumentEditor{text: text, language: LanguageFor(name), open: true}
}

// OpenFile loads path as the active document.
func OpenFile(path string) (_ *DocumentEditor, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer func() { err = multierr.Append(err, f.Close()) }()

	text, err := readScript(f)
	if err != nil {
		return nil, err
	}
	return NewDocumentEditor(filepath.Base(path), text), nil
}

// OpenStdin treats piped standard input as the active document. An
// interactive terminal means nothing is open.
func OpenStdin(stdin *os.File) (*DocumentEditor, error) {
	if term.IsTerminal(int(stdin.Fd())) {
		return NoEditor(), nil
	}
	text, err := readScript(stdin)
	if err != nil {
		return nil, err
	}
	return &DocumentEditor{text: text, language: "python", open: true}, nil
}

func readScript(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(b), nil
}
