// Package batch drives one metadata localization run: enumerate input
// records, detect each record's source language, obtain a translation for
// every target language, and write the enriched records to the output
// tree.
//
// Runs are strictly sequential: one file at a time, one language at a
// time. A failed translation degrades that language to a verbatim copy of
// the source pair; malformed input and filesystem errors abort the run.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/catalog-tools/metaloc/glossary"
	"github.com/catalog-tools/metaloc/langdetect"
	"github.com/catalog-tools/metaloc/metafile"
)

// Fixed directory names inside the project root.
const (
	MetaDir     = "meta"
	DistDir     = "dist"
	GlossaryDir = "glossaries"
)

// Targets returns the fixed list of target languages, in output order.
// Every entry must be registered in langmeta.
func Targets() []langdetect.Lang {
	return []langdetect.Lang{langdetect.ZhCN, langdetect.ZhTW, langdetect.En}
}

// Translator produces a translated pair for one target language.
// translate.Client implements it; tests substitute fakes.
type Translator interface {
	Translate(ctx context.Context, pair metafile.Pair, target langdetect.Lang) (metafile.Pair, error)
}

// Options controls a batch run.
type Options struct {
	// Root is the project root containing meta/ and glossaries/.
	Root string
	// Translator is the translation backend.
	Translator Translator
	// OnLog emits progress messages.
	OnLog func(format string, args ...any)
	// OnWarn emits warnings: degraded translations, zero input files.
	OnWarn func(format string, args ...any)
}

func (o *Options) log(format string, args ...any) {
	if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

func (o *Options) warn(format string, args ...any) {
	if o.OnWarn != nil {
		o.OnWarn(format, args...)
	} else if o.OnLog != nil {
		o.OnLog(format, args...)
	}
}

// Result reports aggregate completion status.
type Result struct {
	// Processed is the number of metadata files written.
	Processed int
}

// Run executes one batch over opts.Root: ensures dist/ exists, copies
// glossaries, then processes every meta/*.yaml file in directory-listing
// order. Zero matching files is a warning, not an error.
func Run(ctx context.Context, opts Options) (Result, error) {
	metaDir := filepath.Join(opts.Root, MetaDir)
	distDir := filepath.Join(opts.Root, DistDir)

	if err := os.MkdirAll(distDir, 0755); err != nil {
		return Result{}, fmt.Errorf("creating output directory: %w", err)
	}

	copied, err := glossary.CopyAll(filepath.Join(opts.Root, GlossaryDir), filepath.Join(distDir, GlossaryDir))
	if err != nil {
		return Result{}, fmt.Errorf("copying glossaries: %w", err)
	}
	opts.log("Copied %d glossary file(s)", copied)

	entries, err := os.ReadDir(metaDir)
	if err != nil {
		return Result{}, fmt.Errorf("reading input directory: %w", err)
	}

	var res Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), metafile.MetaExt) {
			continue
		}
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}
		if err := processFile(ctx, opts, metaDir, distDir, entry.Name()); err != nil {
			return res, err
		}
		res.Processed++
	}

	if res.Processed == 0 {
		opts.warn("No %s files found in %s", metafile.MetaExt, metaDir)
	}
	return res, nil
}

// processFile localizes a single metadata file. Parse and write errors
// are fatal for the run; translation errors degrade to the source pair.
func processFile(ctx context.Context, opts Options, metaDir, distDir, name string) error {
	rec, err := metafile.Load(filepath.Join(metaDir, name))
	if err != nil {
		return err
	}

	source := langdetect.Detect(rec.Name)
	pair := rec.Pair()
	opts.log("Processing %s (source language: %s)", name, source)

	for _, target := range Targets() {
		if target == source {
			// Same language: reuse the source text, no backend call.
			rec.I18ns[string(target)] = pair
			continue
		}
		translated, err := opts.Translator.Translate(ctx, pair, target)
		if err != nil {
			opts.warn("Translation of %s to %s failed, keeping source text: %v", name, target, err)
			rec.I18ns[string(target)] = pair
			continue
		}
		rec.I18ns[string(target)] = translated
	}

	outPath := filepath.Join(distDir, metafile.OutputName(name))
	if err := rec.WriteJSON(outPath); err != nil {
		return err
	}
	opts.log("Wrote %s", outPath)
	return nil
}
