package fileutil

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ReadLines loads a file fully into memory and splits it into lines.
// The trimmer works on whole files, so there is no streaming reader.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text on newlines, tolerating CRLF endings and a
// missing final newline. Interior empty lines are preserved.
func SplitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}

// NonBlankLines drops empty and whitespace-only entries, trimming the
// rest. Used for selection-list files where stray blank lines are noise
// rather than data.
func NonBlankLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// WriteLines writes lines to w, one per line, through a single buffered
// writer.
func WriteLines(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLinesFile writes lines to path, creating or truncating it.
func WriteLinesFile(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteLines(f, lines); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
