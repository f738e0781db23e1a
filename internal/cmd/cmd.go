package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/koskimas/tlgen/internal/config"
	"github.com/koskimas/tlgen/internal/gen"
	"github.com/koskimas/tlgen/internal/model"
	"github.com/koskimas/tlgen/internal/schema"
)

const ConfigFile = "tlgen.yaml"

type Settings struct {
	WorkingDir string
	// ConfigPath defaults to ConfigFile in WorkingDir, which may be missing.
	// An explicit path must exist. Relative paths are resolved against
	// WorkingDir.
	ConfigPath string
}

// Run reads the schema, generates every enabled target and writes the
// outputs. Nothing is written unless every output rendered successfully.
func Run(s Settings) error {
	cfg, err := config.Load(resolvePath(s.WorkingDir, s.ConfigPath, ConfigFile), s.ConfigPath != "")
	if err != nil {
		return err
	}

	sch, err := readSchema(s, *cfg)
	if err != nil {
		return err
	}

	files, err := gen.GenerateCode(*cfg, sch)
	if err != nil {
		return err
	}

	return gen.WriteFiles(s.WorkingDir, files)
}

func readSchema(s Settings, cfg config.Config) (*model.Schema, error) {
	path := resolvePath(s.WorkingDir, cfg.Schema.Path, "")

	text, err := readText(path)
	if err != nil {
		return nil, err
	}

	sch, err := schema.Parse(text, schema.Options{
		HeaderLines: *cfg.Schema.HeaderLines,
		Sentinel:    cfg.Schema.Sentinel,
	})
	if err != nil {
		return nil, fmt.Errorf(`failed to parse schema "%s": %w`, path, err)
	}

	slog.Info("parsed schema",
		"path", path,
		"classes", len(sch.Classes()),
		"types", len(sch.TypeEntries()),
		"functions", len(sch.FunctionEntries()),
	)

	return sch, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf(`failed to read schema "%s": %w`, path, err)
	}

	return string(data), nil
}

func resolvePath(workingDir string, path string, fallback string) string {
	if path == "" {
		path = fallback
	}

	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(workingDir, path)
}
