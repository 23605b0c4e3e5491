// Package pipeline wires the markup, tree and export stages together.
package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/itsmostafa/svgflat/internal/export"
	"github.com/itsmostafa/svgflat/internal/markup"
	"github.com/itsmostafa/svgflat/internal/svgfile"
	"github.com/itsmostafa/svgflat/internal/tree"
	"go.uber.org/zap"
)

// StdStream as an output path writes to Config.Stdout.
const StdStream = "-"

// Config holds one conversion run.
type Config struct {
	Input   string
	Output  string
	Format  export.Format
	Options export.Options
	Stdout  io.Writer
	Logger  *zap.Logger
}

// Result describes a finished conversion.
type Result struct {
	RunID    string
	Tree     *tree.Tree
	Records  []tree.Record
	Nodes    int
	Depth    int
	Duration time.Duration
}

// Rows returns the number of table rows including the header.
func (r *Result) Rows() int {
	return len(r.Records) + 1
}

// Parse turns raw markup into a validated tree. The tree is only built once
// the tag sequence passed validation.
func Parse(text string, log *zap.Logger) (*tree.Tree, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fragments, err := markup.Segment(text)
	if err != nil {
		// Nothing to classify; validation reports the empty sequence.
		log.Warn("Segmentation produced no fragments", zap.Error(err), zap.Int("bytes", len(text)))
	}
	log.Debug("Segmented input", zap.Int("fragments", len(fragments)))

	records, err := markup.ClassifyAll(fragments)
	if err != nil {
		return nil, fmt.Errorf("failed to classify tags: %w", err)
	}
	records = markup.DropIgnored(records)
	log.Debug("Classified tags", zap.Int("records", len(records)))

	if err := tree.Validate(records); err != nil {
		fields := []zap.Field{zap.Error(err)}
		var se *tree.StructureError
		if errors.As(err, &se) {
			fields = append(fields, zap.Int("fragment", se.Fragment), zap.String("tag", se.Tag))
		}
		log.Error("Structure validation failed", fields...)
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	log.Info("Structure validated successfully", zap.Int("records", len(records)))

	t := tree.Build(records)
	if n := t.ReplacedRoots(); n > 0 {
		root, _ := t.Root()
		log.Warn("Top-level element replaced the earlier root",
			zap.Int("replaced", n),
			zap.String("root", t.Tag(root)),
		)
	}
	return t, nil
}

// Load reads the input document, warning when it is empty.
func Load(path string, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}

	text, err := svgfile.Load(path)
	if err != nil {
		return "", err
	}
	if text == "" {
		log.Warn("File is empty", zap.String("input", path))
	}
	return text, nil
}

// LoadTree reads and parses the document at path.
func LoadTree(path string, log *zap.Logger) (*tree.Tree, error) {
	text, err := Load(path, log)
	if err != nil {
		return nil, err
	}
	return Parse(text, log)
}

// Run executes the full conversion: read, parse, flatten and write.
func Run(cfg Config) (*Result, error) {
	start := time.Now()
	runID := uuid.New().String()

	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Format == "" {
		cfg.Format = export.CSV
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("run_id", runID), zap.String("input", cfg.Input))

	t, err := LoadTree(cfg.Input, log)
	if err != nil {
		return nil, err
	}

	records := tree.Records(t)
	log.Debug("Flattened tree", zap.Int("records", len(records)))

	if err := write(cfg, t, records); err != nil {
		log.Error("Failed to write output", zap.String("output", cfg.Output), zap.Error(err))
		return nil, err
	}

	result := &Result{
		RunID:    runID,
		Tree:     t,
		Records:  records,
		Nodes:    t.Size(),
		Depth:    t.Depth(),
		Duration: time.Since(start),
	}

	log.Info("Processing completed successfully",
		zap.String("output", cfg.Output),
		zap.String("format", cfg.Format.String()),
		zap.Int("nodes", result.Nodes),
		zap.Int("rows", result.Rows()),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

func write(cfg Config, t *tree.Tree, records []tree.Record) error {
	if cfg.Output == "" || cfg.Output == StdStream {
		return encode(cfg.Stdout, cfg, t, records)
	}

	f, err := svgfile.Create(cfg.Output)
	if err != nil {
		return err
	}

	if err := encode(f, cfg, t, records); err != nil {
		f.Close()
		os.Remove(cfg.Output)
		return fmt.Errorf("failed to write %s: %w", cfg.Output, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", cfg.Output, err)
	}
	return nil
}

// encode writes CSV from the flattened table and every other format from the
// typed records.
func encode(w io.Writer, cfg Config, t *tree.Tree, records []tree.Record) error {
	if cfg.Format == export.CSV {
		return export.WriteTable(w, tree.Flatten(t), cfg.Options)
	}
	return export.Write(w, cfg.Format, records, cfg.Options)
}
