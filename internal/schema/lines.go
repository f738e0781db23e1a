package schema

import "strings"

const commentPrefix = "//"

type Line struct {
	Number int
	Text   string
}

func (l Line) IsComment() bool {
	return strings.HasPrefix(l.Text, commentPrefix)
}

// terminates reports whether l closes a declaration block.
func (l Line) terminates() bool {
	return !l.IsComment() && strings.HasSuffix(l.Text, ";")
}

// splitLines returns the non-empty lines of text with their line numbers,
// minus the first headerLines of them.
func splitLines(text string, headerLines int) []Line {
	lines := make([]Line, 0)

	for i, raw := range strings.Split(text, "\n") {
		t := strings.TrimRight(raw, " \t\r")
		if strings.TrimSpace(t) == "" {
			continue
		}

		lines = append(lines, Line{
			Number: i + 1,
			Text:   t,
		})
	}

	if headerLines <= 0 {
		return lines
	}

	if headerLines >= len(lines) {
		return lines[:0]
	}

	return lines[headerLines:]
}

// splitSections partitions lines at the sentinel line, which belongs to
// neither side. Without a sentinel every line is in the type section.
func splitSections(lines []Line, sentinel string) (types []Line, functions []Line) {
	for i, l := range lines {
		if strings.TrimSpace(l.Text) == sentinel {
			return lines[:i], lines[i+1:]
		}
	}

	return lines, nil
}
