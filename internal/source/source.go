// Package source reads passages from files or standard input.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrEmpty is returned when the source holds only whitespace.
var ErrEmpty = errors.New("text is empty")

// Load reads the whole passage at path. A path of "-" reads standard input.
func Load(path string) (string, error) {
	if path == "-" {
		return Read(os.Stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only source.
			_ = cerr
		}
	}()
	return Read(file)
}

// Read consumes r and returns its text.
func Read(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read text: %w", err)
	}
	body := string(data)
	if strings.TrimSpace(body) == "" {
		return "", ErrEmpty
	}
	return body, nil
}

// StdinIsPiped reports whether standard input is redirected rather than a terminal.
func StdinIsPiped() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// FlattenLines turns every line break into a single space so hard-wrapped
// sentences can be typed on one input line.
func FlattenLines(raw string) string {
	return lineBreaks.Replace(raw)
}
