// Package app wires the split pipeline: resolve an input STL file, load
// it, cut it at the vertical midpoint of its bounding box and write the
// upper and lower halves to the output directory.
package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/philipparndt/stlsplit/internal/logger"
	"github.com/philipparndt/stlsplit/pkg/split"
	"github.com/philipparndt/stlsplit/pkg/stl"
)

// Options configures a pipeline run.
type Options struct {
	// InputDir and OutputDir are created if absent before anything else
	// happens.
	InputDir  string
	OutputDir string

	// InputPath, when set, bypasses the interactive picker.
	InputPath string

	// In and Out default to stdin/stdout; tests substitute buffers.
	In  io.Reader
	Out io.Writer
}

func (o *Options) setDefaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
}

// Run executes the pipeline strictly sequentially. Errors surface
// immediately; a partial output file from an earlier write is left in
// place.
func Run(opts Options) error {
	opts.setDefaults()

	if err := os.MkdirAll(opts.InputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create input directory: %w", err)
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	inputPath := opts.InputPath
	if inputPath == "" {
		var err error
		inputPath, err = selectInput(opts.InputDir, opts.In, opts.Out)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(opts.Out, "Loading %s...\n", inputPath)

	model, err := stl.Parse(inputPath)
	if err != nil {
		return err
	}
	logger.Debug("model loaded",
		zap.String("file", inputPath),
		zap.Int("triangles", model.TriangleCount()))

	bbox := model.BoundingBox()
	fmt.Fprintln(opts.Out, "Model dimensions:")
	fmt.Fprintf(opts.Out, "X: %.2f to %.2f\n", bbox.Min.X, bbox.Max.X)
	fmt.Fprintf(opts.Out, "Y: %.2f to %.2f\n", bbox.Min.Y, bbox.Max.Y)
	fmt.Fprintf(opts.Out, "Z: %.2f to %.2f\n", bbox.Min.Z, bbox.Max.Z)

	zSplit := split.MidZ(bbox)
	fmt.Fprintf(opts.Out, "Splitting at Z = %.2f\n", zSplit)

	result := split.AtZ(model, zSplit)
	logger.Debug("triangles classified",
		zap.Int("upper", len(result.Upper)),
		zap.Int("lower", len(result.Lower)),
		zap.Int("dropped", result.Dropped))

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	upperPath := filepath.Join(opts.OutputDir, stem+"_upper.stl")
	lowerPath := filepath.Join(opts.OutputDir, stem+"_lower.stl")

	if err := stl.Write(upperPath, stem+"_upper", result.Upper); err != nil {
		return err
	}
	if err := stl.Write(lowerPath, stem+"_lower", result.Lower); err != nil {
		return err
	}

	fmt.Fprintln(opts.Out, "Split complete!")
	fmt.Fprintf(opts.Out, "Upper part saved as: %s\n", filepath.Base(upperPath))
	fmt.Fprintf(opts.Out, "Lower part saved as: %s\n", filepath.Base(lowerPath))

	return nil
}
