package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/domain/repositories"
	"github.com/rios0rios0/credpatch/internal/scanner"
)

// Scan is the interface for the scan command.
type Scan interface {
	Execute(ctx context.Context, settings *entities.Settings, out io.Writer) ([]entities.CallSite, error)
}

// ScanCommand lists the fetch call sites in the configured files that still
// lack credentials, including those no pass knows how to patch.
type ScanCommand struct {
	sources repositories.SourceRepository
}

// NewScanCommand creates a new ScanCommand.
func NewScanCommand(sources repositories.SourceRepository) *ScanCommand {
	return &ScanCommand{sources: sources}
}

// Execute scans every configured file and writes the call sites missing
// credentials to out. With settings.Verbose every call site is listed.
func (it *ScanCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	out io.Writer,
) ([]entities.CallSite, error) {
	var all []entities.CallSite
	for _, file := range settings.Files {
		if err := ctx.Err(); err != nil {
			return all, err
		}

		path := settings.ResolvePath(file)
		if !it.sources.Exists(path) {
			logger.Warnf("File not found: %s", file)
			continue
		}

		content, err := it.sources.Read(path)
		if err != nil {
			return all, err
		}

		sites, err := scanner.ScanFile(ctx, content, file)
		if err != nil {
			return all, err
		}
		all = append(all, sites...)

		listed := entities.MissingCredentials(sites)
		if settings.Verbose {
			listed = sites
		}
		if len(listed) == 0 {
			continue
		}

		if writeErr := writeScanEntries(out, file, listed); writeErr != nil {
			return all, writeErr
		}
	}

	if _, err := fmt.Fprintf(out, "✅ Found %d fetch call sites, %d without credentials\n",
		len(all), len(entities.MissingCredentials(all))); err != nil {
		return all, fmt.Errorf("failed to write scan report: %w", err)
	}
	return all, nil
}

func writeScanEntries(out io.Writer, file string, sites []entities.CallSite) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📁 %s\n", file)
	for _, site := range sites {
		status := "missing credentials"
		if site.HasCredentials {
			status = "ok"
		}
		fmt.Fprintf(&sb, "   └─ %d:%d %s (%s)\n", site.Line, site.Column, site.Snippet, status)
	}

	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("failed to write scan report: %w", err)
	}
	return nil
}
