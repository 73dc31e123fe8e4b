package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"siloops/internal/shared/logger"
)

// Generator creates timestamped up/down migration file pairs.
type Generator struct {
	scriptsPath string
	logger      logger.Interface
}

// NewGenerator creates a migration file generator.
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
	}
}

// CreateMigration writes an empty up/down migration pair.
func (g *Generator) CreateMigration(name string) error {
	timestamp := time.Now().Format("20060102150405")
	upPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downPath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return fmt.Errorf("failed to create scripts directory: %w", err)
	}

	header := fmt.Sprintf("-- Migration: %s\n-- Created at: %s\n\n", name, time.Now().Format(time.RFC3339))
	if err := os.WriteFile(upPath, []byte(header), 0o644); err != nil {
		return fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downPath, []byte(header), 0o644); err != nil {
		return fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created", "up_file", upPath, "down_file", downPath)
	return nil
}
