package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Seeder loads operator-supplied manifest files from a directory on top
// of the embedded set. Used for deployments that ship extra line-of-
// business apps without rebuilding the binary.
type Seeder struct {
	registry *Registry
	dir      string
	logger   *zap.Logger
}

// NewSeeder creates a seeder reading from dir
func NewSeeder(registry *Registry, dir string, logger *zap.Logger) *Seeder {
	return &Seeder{
		registry: registry,
		dir:      dir,
		logger:   logger,
	}
}

// Seed loads every .json manifest in the directory. A missing directory
// is not an error; a malformed manifest is, since silent degradation
// would hide data defects until render time.
func (s *Seeder) Seed() error {
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		s.logger.Debug("No extra manifest directory", zap.String("dir", s.dir))
		return nil
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read manifest directory: %w", err)
	}

	var loaded int
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		if err := s.registry.add(data); err != nil {
			return fmt.Errorf("manifest %s: %w", path, err)
		}
		loaded++
	}

	if loaded > 0 {
		s.logger.Info("Seeded extra app manifests",
			zap.String("dir", s.dir),
			zap.Int("loaded", loaded),
		)
	}
	return nil
}
