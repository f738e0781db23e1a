package typescript

import "strings"

// stringBuilder is used to build the generated TypeScript modules.
type stringBuilder struct {
	strings.Builder
	newLine bool
	indent  int
}

func (s *stringBuilder) Indent() {
	s.indent += 1
}

func (s *stringBuilder) DeIndent() {
	s.indent -= 1
}

func (s *stringBuilder) WriteNewLine() {
	_ = s.Builder.WriteByte('\n')
	s.newLine = true
}

// WriteLine writes str followed by a newline. An empty str writes an empty
// line without indentation.
func (s *stringBuilder) WriteLine(str string) {
	if str != "" {
		s.WriteString(str)
	}

	s.WriteNewLine()
}

func (s *stringBuilder) WriteString(str string) {
	s.checkNewline()
	_, _ = s.Builder.WriteString(str)
}

func (s *stringBuilder) checkNewline() {
	if s.newLine {
		s.newLine = false
		for i := 0; i < s.indent; i += 1 {
			_, _ = s.Builder.WriteString("  ")
		}
	}
}
