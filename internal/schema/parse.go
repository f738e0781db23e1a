package schema

import (
	"fmt"
	"log/slog"

	"github.com/koskimas/tlgen/internal/model"
)

const (
	DefaultHeaderLines = 9
	DefaultSentinel    = "---functions---"
)

type Options struct {
	// HeaderLines is the number of non-empty lines skipped at the top.
	HeaderLines int
	// Sentinel separates type declarations from function declarations.
	Sentinel string
}

func DefaultOptions() Options {
	return Options{
		HeaderLines: DefaultHeaderLines,
		Sentinel:    DefaultSentinel,
	}
}

// Parse parses a schema document into its type and function declarations.
func Parse(text string, opts Options) (*model.Schema, error) {
	types, functions := splitSections(splitLines(text, opts.HeaderLines), opts.Sentinel)

	typeDecls, err := parseSection(types)
	if err != nil {
		return nil, fmt.Errorf("type section: %w", err)
	}

	funcDecls, err := parseSection(functions)
	if err != nil {
		return nil, fmt.Errorf("function section: %w", err)
	}

	return &model.Schema{
		Types:     typeDecls,
		Functions: funcDecls,
	}, nil
}

func parseSection(lines []Line) ([]model.Declaration, error) {
	decls := make([]model.Declaration, 0)

	for _, b := range groupBlocks(lines) {
		d, err := parseBlock(b)
		if err != nil {
			return nil, err
		}

		decls = append(decls, d)
	}

	return decls, nil
}

func parseBlock(b Block) (model.Declaration, error) {
	comments := b.Comments()
	decl := model.Declaration{
		Classes: classMarkers(comments),
	}

	for _, c := range decl.Classes {
		slog.Debug("parsed class marker", "name", c.Name, "line", c.Line)
	}

	line, ok := b.Declaration()
	if !ok {
		return decl, nil
	}

	if !line.terminates() {
		return decl, parseErrorf(line, "unterminated declaration")
	}

	entry, err := parseEntry(line, NullableFields(comments))
	if err != nil {
		return decl, err
	}

	slog.Debug("parsed declaration", "name", entry.UnmodifiedName, "fields", len(entry.Fields), "line", entry.Line)
	decl.Entry = entry

	return decl, nil
}
