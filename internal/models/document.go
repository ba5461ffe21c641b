package models

import "strings"

// Encoding names recorded on a Document after loading.
const (
	EncodingUTF8      = "utf-8"
	EncodingISO8859_1 = "iso-8859-1"
)

// Document is an ordered sequence of lines read from one input file.
// Lines keep their trailing terminator ("\n" or "\r\n"); the last line may have none.
type Document struct {
	Path     string   `json:"path"`
	Label    string   `json:"label"`
	Encoding string   `json:"encoding"`
	Lines    []string `json:"lines"`
}

// NewDocument builds a Document from already split lines.
func NewDocument(label string, lines []string) *Document {
	return &Document{
		Label:    label,
		Encoding: EncodingUTF8,
		Lines:    lines,
	}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Lines)
}

// Line returns the line at zero-based index i.
func (d *Document) Line(i int) string {
	return d.Lines[i]
}

// Text joins all lines back into the file content.
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	return strings.Join(d.Lines, "")
}

// SplitLines splits text into lines, keeping terminators. A trailing
// terminator does not produce an extra empty line.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// SplitTerminator separates a line into its content and trailing terminator.
func SplitTerminator(line string) (content, terminator string) {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return line[:len(line)-2], "\r\n"
	case strings.HasSuffix(line, "\n"):
		return line[:len(line)-1], "\n"
	default:
		return line, ""
	}
}
