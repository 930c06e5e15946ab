package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/stlsplit/pkg/geometry"
	"github.com/philipparndt/stlsplit/pkg/stl"
)

func flatTriangle(z float64) geometry.Triangle {
	return geometry.NewTriangle(
		geometry.NewVector3(0, 0, 1),
		geometry.NewVector3(0, 0, z),
		geometry.NewVector3(1, 0, z),
		geometry.NewVector3(0, 1, z),
	)
}

// cubeTriangles returns twelve triangles spanning z 0..1, six entirely
// below the midpoint and six entirely above it.
func cubeTriangles() []geometry.Triangle {
	var triangles []geometry.Triangle
	for _, z := range []float64{0, 0, 0.125, 0.25, 0.25, 0.375, 0.625, 0.75, 0.75, 0.875, 1, 1} {
		triangles = append(triangles, flatTriangle(z))
	}
	return triangles
}

func testDirs(t *testing.T) (string, string) {
	t.Helper()
	base := t.TempDir()
	return filepath.Join(base, "input"), filepath.Join(base, "output")
}

func TestRunSplitsCube(t *testing.T) {
	inputDir, outputDir := testDirs(t)
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}

	inputPath := filepath.Join(inputDir, "cube.stl")
	if err := stl.Write(inputPath, "cube", cubeTriangles()); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var out bytes.Buffer
	err := Run(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		InputPath: inputPath,
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	upper, err := stl.Parse(filepath.Join(outputDir, "cube_upper.stl"))
	if err != nil {
		t.Fatalf("failed to parse upper output: %v", err)
	}
	lower, err := stl.Parse(filepath.Join(outputDir, "cube_lower.stl"))
	if err != nil {
		t.Fatalf("failed to parse lower output: %v", err)
	}

	if upper.TriangleCount() != 6 {
		t.Errorf("upper count failed: expected 6, got %d", upper.TriangleCount())
	}
	if lower.TriangleCount() != 6 {
		t.Errorf("lower count failed: expected 6, got %d", lower.TriangleCount())
	}

	output := out.String()
	if !strings.Contains(output, "Splitting at Z = 0.50") {
		t.Errorf("expected split height in output, got:\n%s", output)
	}
	if !strings.Contains(output, "Split complete!") {
		t.Errorf("expected completion message in output, got:\n%s", output)
	}
}

func TestRunSolidPrefixedFileName(t *testing.T) {
	// Input stems starting with "solid" must survive the binary
	// write/reload cycle for both the input and the output files.
	inputDir, outputDir := testDirs(t)
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}

	inputPath := filepath.Join(inputDir, "solidpart.stl")
	if err := stl.Write(inputPath, "solidpart", cubeTriangles()); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	err := Run(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		InputPath: inputPath,
		Out:       &bytes.Buffer{},
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, name := range []string{"solidpart_upper.stl", "solidpart_lower.stl"} {
		part, err := stl.Parse(filepath.Join(outputDir, name))
		if err != nil {
			t.Fatalf("failed to parse %s: %v", name, err)
		}
		if part.TriangleCount() != 6 {
			t.Errorf("%s count failed: expected 6, got %d", name, part.TriangleCount())
		}
	}
}

func TestRunCreatesDirectories(t *testing.T) {
	inputDir, outputDir := testDirs(t)

	// No input file and an empty input directory: the run fails, but the
	// directories must exist afterwards.
	err := Run(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		In:        strings.NewReader(""),
		Out:       &bytes.Buffer{},
	})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}

	for _, dir := range []string{inputDir, outputDir} {
		if _, statErr := os.Stat(dir); statErr != nil {
			t.Errorf("expected directory %s to exist: %v", dir, statErr)
		}
	}
}

func TestRunInteractiveSelection(t *testing.T) {
	inputDir, outputDir := testDirs(t)
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}
	if err := stl.Write(filepath.Join(inputDir, "part.stl"), "part", cubeTriangles()); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	var out bytes.Buffer
	err := Run(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		In:        strings.NewReader("1\n"),
		Out:       &out,
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(out.String(), "1. part.stl") {
		t.Errorf("expected file listing in output, got:\n%s", out.String())
	}
	if _, err := os.Stat(filepath.Join(outputDir, "part_upper.stl")); err != nil {
		t.Errorf("expected upper output file: %v", err)
	}
}

func TestRunMalformedInput(t *testing.T) {
	inputDir, outputDir := testDirs(t)
	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		t.Fatalf("failed to create input dir: %v", err)
	}

	inputPath := filepath.Join(inputDir, "bad.stl")
	if err := os.WriteFile(inputPath, []byte("solid bad\nvertex 0 0 0\nendsolid bad\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	err := Run(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		InputPath: inputPath,
		Out:       &bytes.Buffer{},
	})
	if !errors.Is(err, stl.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestSelectInput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.stl", "b.stl", "notes.txt", "upper.STL"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to seed dir: %v", err)
		}
	}

	var out bytes.Buffer
	path, err := selectInput(dir, strings.NewReader("2\n"), &out)
	if err != nil {
		t.Fatalf("selectInput failed: %v", err)
	}

	if filepath.Base(path) != "b.stl" {
		t.Errorf("expected b.stl, got %s", path)
	}
	// Extension matching is case-sensitive and non-.stl files are skipped.
	if strings.Contains(out.String(), "notes.txt") || strings.Contains(out.String(), "upper.STL") {
		t.Errorf("unexpected candidates listed:\n%s", out.String())
	}
}

func TestSelectInputFailures(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.stl"), []byte("x"), 0o644); err != nil {
		t.Fatalf("failed to seed dir: %v", err)
	}

	cases := []struct {
		name  string
		input string
	}{
		{"non-numeric", "abc\n"},
		{"zero", "0\n"},
		{"out of range", "5\n"},
		{"empty prompt", ""},
	}

	for _, tc := range cases {
		_, err := selectInput(dir, strings.NewReader(tc.input), &bytes.Buffer{})
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("%s: expected ErrNoInput, got %v", tc.name, err)
		}
	}
}

func TestSelectInputEmptyDirectory(t *testing.T) {
	_, err := selectInput(t.TempDir(), strings.NewReader("1\n"), &bytes.Buffer{})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestSelectInputMissingDirectory(t *testing.T) {
	_, err := selectInput(filepath.Join(t.TempDir(), "missing"), strings.NewReader("1\n"), &bytes.Buffer{})
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}
