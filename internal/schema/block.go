package schema

import "strings"

// Block is the run of lines making up one declaration: any number of comment
// lines followed by the declaration itself.
type Block struct {
	Lines []Line
}

// groupBlocks closes a block after every non-comment line that ends with `;`.
// The last block may hold only comments.
func groupBlocks(lines []Line) []Block {
	blocks := make([]Block, 0)
	current := Block{}

	for _, l := range lines {
		current.Lines = append(current.Lines, l)

		if l.terminates() {
			blocks = append(blocks, current)
			current = Block{}
		}
	}

	if len(current.Lines) > 0 {
		blocks = append(blocks, current)
	}

	return blocks
}

func (b Block) Comments() []Line {
	comments := make([]Line, 0, len(b.Lines))

	for _, l := range b.Lines {
		if l.IsComment() {
			comments = append(comments, l)
		}
	}

	return comments
}

// Declaration joins the trailing non-comment lines of the block into one
// line. ok is false when the block has no declaration at all.
func (b Block) Declaration() (decl Line, ok bool) {
	start := len(b.Lines)
	for start > 0 && !b.Lines[start-1].IsComment() {
		start -= 1
	}

	if start == len(b.Lines) {
		return Line{}, false
	}

	parts := make([]string, 0, len(b.Lines)-start)
	for _, l := range b.Lines[start:] {
		parts = append(parts, strings.TrimSpace(l.Text))
	}

	return Line{
		Number: b.Lines[start].Number,
		Text:   strings.Join(parts, " "),
	}, true
}
