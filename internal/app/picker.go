package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNoInput indicates that no input file could be resolved, either from
// the command line or from an interactive selection.
var ErrNoInput = errors.New("no input file selected")

// selectInput lists the .stl files in dir 1-indexed on out, prompts on in
// for a numeric selection and returns the chosen path. Every failure mode
// (unreadable directory, no candidates, unparseable or out-of-range
// selection) wraps ErrNoInput.
func selectInput(dir string, in io.Reader, out io.Writer) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read input directory: %w", ErrNoInput, err)
	}

	var stlFiles []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Case-sensitive on purpose: only the literal ".stl" extension
		// is picked up.
		if strings.HasSuffix(entry.Name(), ".stl") {
			stlFiles = append(stlFiles, entry.Name())
		}
	}

	if len(stlFiles) == 0 {
		return "", fmt.Errorf("%w: no STL files found in %s", ErrNoInput, dir)
	}

	fmt.Fprintln(out, "Available STL files:")
	for i, name := range stlFiles {
		fmt.Fprintf(out, "%d. %s\n", i+1, name)
	}
	fmt.Fprint(out, "Select file number to process: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: failed to read selection: %w", ErrNoInput, err)
	}

	selection, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return "", fmt.Errorf("%w: selection is not a number", ErrNoInput)
	}
	if selection < 1 || selection > len(stlFiles) {
		return "", fmt.Errorf("%w: invalid file number %d", ErrNoInput, selection)
	}

	return filepath.Join(dir, stlFiles[selection-1]), nil
}
