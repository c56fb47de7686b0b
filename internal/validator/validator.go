package validator

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	perrors "github.com/log-compass/community-packs/internal/errors"
	"github.com/log-compass/community-packs/internal/logging"
	"github.com/log-compass/community-packs/internal/pack"
	"github.com/log-compass/community-packs/internal/taxonomy"
	"github.com/log-compass/community-packs/internal/ui"
)

// Options configures a validation run.
type Options struct {
	PacksDir       string
	CategoriesFile string
	Out            io.Writer // report lines; nil discards them
}

// Run validates every pack under opts.PacksDir and prints one line per pack.
// The returned error is reserved for fatal conditions, each printed before
// Run returns: a missing or malformed taxonomy (checked before any pack is
// read), an unreadable packs directory, or a pack schema that cannot be
// compiled. Pack failures, including an unreadable pack.json, are recorded
// in the Report.
func Run(opts Options) (*Report, error) {
	logger := logging.GetLogger("validator")
	defer logging.LogOperationStart(logger, "validate")()

	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	p := ui.NewPrinter(out)

	tx, err := taxonomy.Load(opts.CategoriesFile)
	if err != nil {
		if perrors.HasCode(err, perrors.ErrMissingFile) {
			p.Fail("%s not found", filepath.Base(opts.CategoriesFile))
		} else {
			p.Fail("%s could not be loaded: %v", filepath.Base(opts.CategoriesFile), err)
		}
		return nil, err
	}
	logger.Debug().Strs("categories", tx.IDs()).Msg("Loaded taxonomy")

	report := &Report{PacksDir: opts.PacksDir}

	entries, err := os.ReadDir(opts.PacksDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			report.DirMissing = true
			p.Info("No packs directory found, skipping validation")
			return report, nil
		}
		p.Fail("Cannot read packs directory %s: %v", opts.PacksDir, err)
		return nil, fmt.Errorf("reading packs directory %s: %w", opts.PacksDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		packPath := filepath.Join(opts.PacksDir, entry.Name(), pack.FileName)
		data, err := os.ReadFile(packPath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Trace().Str("dir", entry.Name()).Msg("No pack document, skipping")
				continue
			}
			res := PackResult{Dir: entry.Name(), Path: packPath, Issues: []Issue{{
				Code:    perrors.ErrReadFailed,
				Message: fmt.Sprintf("Cannot read %s - %v", pack.FileName, err),
			}}}
			report.Packs = append(report.Packs, res)
			printResult(p, res)
			continue
		}

		res, err := CheckPack(tx, entry.Name(), data)
		if err != nil {
			p.Fail("%s: %v", entry.Name(), err)
			return nil, fmt.Errorf("checking %s: %w", packPath, err)
		}
		res.Path = packPath
		report.Packs = append(report.Packs, res)
		for _, issue := range res.Issues {
			logger.Debug().Err(issue.Err()).Str("pack", res.Dir).Msg("Pack failed check")
		}

		printResult(p, res)
	}

	switch {
	case report.Count() == 0:
		p.Info("No packs found to validate")
	case report.OK():
		p.Plain("")
		p.Done("All %d pack(s) validated successfully", report.Count())
	default:
		p.Plain("")
		p.Fail("%d of %d pack(s) failed validation", report.Failed(), report.Count())
	}

	logger.Info().
		Int("packs", report.Count()).
		Int("failed", report.Failed()).
		Msg("Validation finished")
	return report, nil
}

func printResult(p *ui.Printer, res PackResult) {
	for _, w := range res.Warnings {
		p.Warn("%s: %s", res.Dir, w)
	}
	if res.OK() {
		p.Pass("%s: Valid", res.Dir)
		return
	}
	for _, issue := range res.Issues {
		p.Fail("%s: %s", res.Dir, issue.Message)
		for _, f := range issue.Fields {
			p.Detail("%s", f)
		}
	}
}
