package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/credpatch/internal/infrastructure/repositories"
)

// Patch is the interface for the patch command.
type Patch interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.RunReport, error)
}

// PatchCommand walks the configured files and injects credentials into their
// fetch call sites: check existence -> read -> saturation guard -> passes -> write.
//
// Files are processed one at a time and independently. A missing file is
// skipped; any other I/O failure aborts the run, leaving files already written
// as they are.
type PatchCommand struct {
	patcherRegistry *infraRepos.PatcherRegistry
	sources         repositories.SourceRepository
	manifests       repositories.ManifestRepository
}

// NewPatchCommand creates a new PatchCommand.
func NewPatchCommand(
	patcherRegistry *infraRepos.PatcherRegistry,
	sources repositories.SourceRepository,
	manifests repositories.ManifestRepository,
) *PatchCommand {
	return &PatchCommand{
		patcherRegistry: patcherRegistry,
		sources:         sources,
		manifests:       manifests,
	}
}

// Execute runs the configured passes over every configured file.
func (it *PatchCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.RunReport, error) {
	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	pipeline, err := it.patcherRegistry.Pipeline(settings.Passes)
	if err != nil {
		return nil, err
	}

	var manifest *entities.Manifest
	if manifestPath := settings.ManifestPath(); manifestPath != "" {
		manifest, err = it.manifests.Load(manifestPath)
		if err != nil {
			return nil, err
		}
	}

	report := &entities.RunReport{}
	for _, file := range settings.Files {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, ctxErr
		}

		fileReport, fileErr := it.processFile(ctx, file, pipeline, settings, manifest)
		if fileErr != nil {
			return report, fileErr
		}
		report.Add(*fileReport)

		if manifest != nil && fileReport.Status == entities.FileStatusPatched && !settings.DryRun {
			if recordErr := it.recordPatch(settings.ManifestPath(), manifest, fileReport); recordErr != nil {
				return report, recordErr
			}
		}
	}

	logger.Infof(
		"All files processed: %d patched, %d already applied, %d not found, %d insertions",
		report.CountByStatus(entities.FileStatusPatched),
		report.CountByStatus(entities.FileStatusAlreadyApplied),
		report.CountByStatus(entities.FileStatusNotFound),
		report.TotalInsertions(),
	)
	return report, nil
}

// processFile handles a single configured file.
func (it *PatchCommand) processFile(
	ctx context.Context,
	file string,
	pipeline []repositories.PatcherRepository,
	settings *entities.Settings,
	manifest *entities.Manifest,
) (*entities.FileReport, error) {
	path := settings.ResolvePath(file)
	if !it.sources.Exists(path) {
		logger.Warnf("File not found: %s", file)
		return &entities.FileReport{Path: file, Status: entities.FileStatusNotFound}, nil
	}

	logger.Infof("Processing: %s", file)

	content, err := it.sources.Read(path)
	if err != nil {
		return nil, err
	}

	before := entities.CountMarkers(content)
	fileReport := &entities.FileReport{
		Path:     file,
		Before:   before,
		After:    before,
		Original: content,
		Patched:  content,
	}

	if entities.IsSaturated(content, settings.Threshold) {
		logger.Infof("Already applied: %s (%d markers)", file, before)
		fileReport.Status = entities.FileStatusAlreadyApplied
		return fileReport, nil
	}
	if manifest.Matches(file, entities.ContentHash(content)) {
		logger.Infof("Already applied: %s (unchanged since last patch)", file)
		fileReport.Status = entities.FileStatusAlreadyApplied
		return fileReport, nil
	}

	patched := content
	for _, p := range pipeline {
		patched, err = p.Patch(ctx, patched)
		if err != nil {
			return nil, fmt.Errorf("%s pass failed on %s: %w", p.Name(), file, err)
		}
	}

	fileReport.Patched = patched
	fileReport.After = entities.CountMarkers(patched)
	fileReport.Insertions = fileReport.After - before

	if patched == content {
		logger.Infof("Done: %s (0 insertions)", file)
		fileReport.Status = entities.FileStatusUnchanged
		return fileReport, nil
	}

	fileReport.Status = entities.FileStatusPatched
	if settings.DryRun {
		logger.Infof("[DRY RUN] Would write %s (%d insertions)", file, fileReport.Insertions)
		return fileReport, nil
	}

	if writeErr := it.sources.Write(path, patched); writeErr != nil {
		return nil, writeErr
	}
	logger.Infof("Done: %s (%d insertions)", file, fileReport.Insertions)
	return fileReport, nil
}

func (it *PatchCommand) recordPatch(
	manifestPath string,
	manifest *entities.Manifest,
	fileReport *entities.FileReport,
) error {
	manifest.Record(fileReport.Path, entities.ManifestEntry{
		SHA256:     entities.ContentHash(fileReport.Patched),
		Insertions: fileReport.Insertions,
		PatchedAt:  time.Now().UTC(),
	})
	return it.manifests.Save(manifestPath, manifest)
}
