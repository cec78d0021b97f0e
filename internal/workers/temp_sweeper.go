package workers

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
)

// TempSweeper removes plaintext left in the temp directory by a previous run
// that exited before its scheduled cleanups fired.
type TempSweeper struct {
	dir    string
	logger *logger.Logger
}

func NewTempSweeper(dir string, logger *logger.Logger) *TempSweeper {
	return &TempSweeper{dir: dir, logger: logger}
}

func (s *TempSweeper) Run() {
	if s.dir == "" {
		return
	}

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "TempSweeper.Run").Str("path", s.dir).Msg("failed to read temp dir")
		return
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(s.dir, entry.Name())
		if err = os.RemoveAll(path); err != nil {
			s.logger.Debug().Err(err).Str("path", path).Msg("failed to remove leftover view file")
			continue
		}
		removed++
	}

	if removed > 0 {
		s.logger.Info().Int("removed", removed).Str("path", s.dir).Msg("swept leftover view files")
	}
}
