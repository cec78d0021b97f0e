// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

// prescanWorkers bounds the concurrent directory walks of the pre-scan.
const prescanWorkers = 4

type importService struct {
	cipher      crypto.Cipher
	vault       store.VaultStore
	catalog     store.MetadataCatalog
	index       store.CatalogIndex
	ids         IDGenerator
	invalidator CacheInvalidator

	logger *logger.Logger
}

func NewImportService(
	cipher crypto.Cipher,
	storages *store.Storages,
	ids IDGenerator,
	invalidator CacheInvalidator,
	logger *logger.Logger,
) ImportService {
	return &importService{
		cipher:      cipher,
		vault:       storages.Vault,
		catalog:     storages.Catalog,
		index:       storages.Index,
		ids:         ids,
		invalidator: invalidator,
		logger:      logger,
	}
}

// importRun is the mutable state of a single Import call.
type importRun struct {
	job      models.ImportJob
	rootID   int64
	result   models.ImportResult
	progress int
}

func (r *importRun) fail(path string, reason error) {
	r.result.Failures = append(r.result.Failures, models.ImportFailure{Path: path, Reason: reason})
}

func (r *importRun) succeed() {
	r.result.Imported++
	r.progress++
	if r.job.Progress != nil {
		r.job.Progress(r.progress, r.result.Total)
	}
}

func (s *importService) Import(ctx context.Context, job models.ImportJob) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	if !job.Panel.Valid() {
		return models.ImportResult{}, fmt.Errorf("%w: %q", models.ErrUnknownPanel, job.Panel)
	}

	rootID, err := s.panelRoot(ctx, job.Panel)
	if err != nil {
		log.Err(err).Str("func", "importService.Import").Str("panel", string(job.Panel)).Msg("failed to resolve panel root folder")
		return models.ImportResult{}, fmt.Errorf("resolve panel root: %w", err)
	}

	// "docs/" and "docs" must walk to the same folder keys
	sources := make([]string, len(job.Sources))
	for i, src := range job.Sources {
		sources[i] = filepath.Clean(src)
	}

	counts, err := prescan(ctx, sources)
	if err != nil {
		return models.ImportResult{}, err
	}

	run := &importRun{
		job:    job,
		rootID: rootID,
		result: models.ImportResult{Failures: make([]models.ImportFailure, 0)},
	}
	for _, n := range counts {
		run.result.Total += max(n, 0)
	}

	for i, src := range sources {
		if counts[i] < 0 {
			run.fail(src, fmt.Errorf("%w: %s", ErrSourceNotFound, src))
			continue
		}

		info, statErr := os.Stat(src)
		switch {
		case statErr != nil:
			run.fail(src, fmt.Errorf("%w: %w", ErrSourceNotFound, statErr))
		case info.IsDir() && job.Policy == models.ImportMirrorStructure:
			s.importMirrored(ctx, run, src)
		case info.IsDir():
			s.importFlattened(ctx, run, src)
		default:
			folderID := rootID
			if job.TargetFolderID != nil {
				folderID = *job.TargetFolderID
			}
			s.importOne(ctx, run, src, filepath.Base(src), folderID)
		}
	}

	if run.result.Imported > 0 && s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	log.Info().
		Str("panel", string(job.Panel)).
		Str("policy", job.Policy.String()).
		Int("total", run.result.Total).
		Int("imported", run.result.Imported).
		Int("failed", len(run.result.Failures)).
		Msg("import finished")

	return run.result, nil
}

// panelRoot returns the first root folder of panel, creating it on demand.
func (s *importService) panelRoot(ctx context.Context, panel models.Panel) (int64, error) {
	roots, err := s.index.GetSubfolders(ctx, nil, panel)
	if err != nil {
		return 0, err
	}
	if len(roots) > 0 {
		return roots[0].ID, nil
	}

	return s.index.CreateFolder(ctx, panel.DisplayName(), nil, panel)
}

// importFlattened registers every file of the tree under the panel root.
// Nesting is folded into the display name: a/b/x.pdf becomes a_b_x.pdf.
func (s *importService) importFlattened(ctx context.Context, run *importRun, src string) {
	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			run.fail(path, fmt.Errorf("%w: %w", ErrSourceNotFound, err))
			if d != nil && d.IsDir() && path != src {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(src, filepath.Dir(path))
		if relErr != nil {
			run.fail(path, relErr)
			return nil
		}
		prefix := ""
		if rel != "." {
			prefix = strings.ReplaceAll(rel, string(filepath.Separator), "_") + "_"
		}

		s.importOne(ctx, run, path, prefix+d.Name(), run.rootID)
		return nil
	})
	if walkErr != nil {
		run.fail(src, walkErr)
	}
}

// importMirrored recreates the tree as catalog folders under the target
// folder, or the panel root when no target is given.
func (s *importService) importMirrored(ctx context.Context, run *importRun, src string) {
	parentID := run.rootID
	if run.job.TargetFolderID != nil {
		parentID = *run.job.TargetFolderID
	}

	folders := make(map[string]int64)

	walkErr := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			run.fail(path, fmt.Errorf("%w: %w", ErrSourceNotFound, err))
			if d != nil && d.IsDir() && path != src {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			parent := parentID
			if path != src {
				var ok bool
				if parent, ok = folders[filepath.Dir(path)]; !ok {
					run.fail(path, fmt.Errorf("%w: %s", ErrParentFolderMissing, filepath.Dir(path)))
					return fs.SkipDir
				}
			}
			id, createErr := s.index.CreateFolder(ctx, filepath.Base(path), &parent, run.job.Panel)
			if createErr != nil {
				run.fail(path, createErr)
				return fs.SkipDir
			}
			folders[path] = id
			return nil
		}

		folderID, ok := folders[filepath.Dir(path)]
		if !ok {
			run.fail(path, fmt.Errorf("%w: %s", ErrParentFolderMissing, filepath.Dir(path)))
			return nil
		}
		s.importOne(ctx, run, path, d.Name(), folderID)
		return nil
	})
	if walkErr != nil {
		run.fail(src, walkErr)
	}
}

// importOne seals one file and registers it. Disallowed types are skipped
// without a trace; every other problem becomes a failure of the run.
func (s *importService) importOne(ctx context.Context, run *importRun, src, displayName string, folderID int64) {
	err := s.ingest(ctx, src, displayName, folderID, run.job.Panel)
	switch {
	case errors.Is(err, ErrTypeRejected):
		return
	case err != nil:
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "importService.importOne").
			Str("path", src).
			Msg("file was not imported")
		run.fail(src, err)
	default:
		run.succeed()
	}
}

func (s *importService) ingest(ctx context.Context, src, displayName string, folderID int64, panel models.Panel) error {
	if !models.IsAllowedFile(displayName) {
		return ErrTypeRejected
	}

	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	plaintext, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}

	sealed, err := s.cipher.Seal(plaintext)
	if err != nil {
		return fmt.Errorf("seal %s: %w", displayName, err)
	}

	id := s.ids.Generate()
	objectName := store.ObjectName(id, displayName)

	objectPath, err := s.vault.Write(panel, objectName, sealed)
	if err != nil {
		return err
	}

	record := models.MetadataRecord{
		OriginalName: displayName,
		Panel:        panel,
		Size:         int64(len(plaintext)),
		CreatedAt:    models.NewUnixTime(info.ModTime()),
		ObjectID:     id,
	}
	if err = s.catalog.Put(objectName, record); err != nil {
		_ = s.vault.Delete(objectPath)
		return err
	}

	if _, err = s.index.AddFile(ctx, folderID, displayName, objectPath); err != nil {
		_ = s.catalog.Remove(objectName)
		_ = s.vault.Delete(objectPath)
		return fmt.Errorf("register %s: %w", displayName, err)
	}

	return nil
}

// prescan counts the importable files of every source so the total is known
// before any sealing work starts. A missing source counts as -1.
func prescan(ctx context.Context, sources []string) ([]int, error) {
	counts := make([]int, len(sources))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(prescanWorkers)

	for i, src := range sources {
		g.Go(func() error {
			counts[i] = countEligible(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("prescan: %w", err)
	}

	return counts, nil
}

func countEligible(src string) int {
	info, err := os.Stat(src)
	if err != nil {
		return -1
	}
	if !info.IsDir() {
		if models.IsAllowedFile(info.Name()) {
			return 1
		}
		return 0
	}

	n := 0
	_ = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() && path != src {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && models.IsAllowedFile(d.Name()) {
			n++
		}
		return nil
	})

	return n
}
