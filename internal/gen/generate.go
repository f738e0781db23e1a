package gen

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/koskimas/tlgen/internal/config"
	"github.com/koskimas/tlgen/internal/gen/golang"
	"github.com/koskimas/tlgen/internal/gen/typescript"
	"github.com/koskimas/tlgen/internal/model"
)

// File is a rendered output. Path is relative to the working directory.
type File struct {
	Path    string
	Content []byte
}

// GenerateCode renders every enabled target. Nothing is written; see
// WriteFiles.
func GenerateCode(cfg config.Config, s *model.Schema) ([]File, error) {
	files := make([]File, 0)

	if cfg.TypeScript.IsEnabled() {
		files = append(files, genTypeScript(cfg.TypeScript, s)...)
	}

	if cfg.Go.Enabled {
		goFiles, err := genGo(cfg.Go, s)
		if err != nil {
			return nil, err
		}

		files = append(files, goFiles...)
	}

	return files, nil
}

func genTypeScript(cfg config.TypeScript, s *model.Schema) []File {
	opts := typescript.ClientOptions{
		BaseClientImport: cfg.BaseClient,
		ClassesImport:    cfg.ClassesImport,
	}

	return []File{
		{Path: cfg.Classes, Content: []byte(typescript.Classes(s))},
		{Path: cfg.Client, Content: []byte(typescript.Client(s, opts))},
	}
}

func genGo(cfg config.Go, s *model.Schema) ([]File, error) {
	types, err := renderGo(golang.Types(s, cfg.Types.Package))
	if err != nil {
		return nil, fmt.Errorf("failed to render go types: %w", err)
	}

	client, err := renderGo(golang.Client(s, cfg.Types.Package, cfg.Client.Package))
	if err != nil {
		return nil, fmt.Errorf("failed to render go client: %w", err)
	}

	return []File{
		{Path: cfg.Types.Path, Content: types},
		{Path: cfg.Client.Path, Content: client},
	}, nil
}

func renderGo(f *jen.File) ([]byte, error) {
	var buf bytes.Buffer

	if err := f.Render(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// WriteFiles writes files under workingDir, creating directories as needed.
func WriteFiles(workingDir string, files []File) error {
	for _, f := range files {
		filePath := filepath.Join(workingDir, f.Path)

		if err := writeText(filePath, f.Content); err != nil {
			return err
		}

		slog.Info("wrote file", "path", filePath, "bytes", len(f.Content))
	}

	return nil
}

func writeText(filePath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf(`failed to create directory for "%s": %w`, filePath, err)
	}

	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf(`failed to write "%s": %w`, filePath, err)
	}

	return nil
}
