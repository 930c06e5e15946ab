package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/stlsplit/pkg/geometry"
)

// defaultNormal replaces whatever normal the source file carries. The
// split pipeline never consumes normals, so they are not reconstructed
// from vertex geometry either.
var defaultNormal = geometry.NewVector3(0, 0, 1)

// Parse reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func Parse(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open file: %w", ErrMalformed, err)
	}
	defer file.Close()

	// Read first few bytes to determine format
	header := make([]byte, 6)
	n, err := file.Read(header)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file header: %w", ErrMalformed, err)
	}

	// Reset file pointer
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("%w: failed to reset file pointer: %w", ErrMalformed, err)
	}

	// Check if it's ASCII format (starts with "solid ")
	if n >= 5 && strings.HasPrefix(string(header[:5]), "solid") {
		return parseASCII(file)
	}

	return parseBinary(file)
}

// parseASCII parses an ASCII STL file into a flat vertex sequence.
// Facet normals in the file are skipped.
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)

	var name string
	var vertices []geometry.Vector3

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: vertex line with %d fields", ErrMalformed, len(fields))
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("%w: non-numeric vertex coordinate in %q", ErrMalformed, line)
			}
			vertices = append(vertices, geometry.NewVector3(x, y, z))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: error reading ASCII STL: %w", ErrMalformed, err)
	}

	return buildTriangles(name, vertices)
}

// parseBinary parses a binary STL file into a flat vertex sequence.
// Facet normals and attribute bytes are consumed and discarded.
func parseBinary(reader io.Reader) (*Model, error) {
	// Read 80-byte header
	header := make([]byte, 80)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("%w: failed to read header: %w", ErrMalformed, err)
	}

	// Extract name from header (if present)
	name := strings.TrimRight(string(header), "\x00 ")

	// Read triangle count
	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("%w: failed to read triangle count: %w", ErrMalformed, err)
	}

	// The facet count is untrusted; grow the slice as records actually
	// decode rather than pre-allocating from it.
	var vertices []geometry.Vector3

	for i := uint32(0); i < triangleCount; i++ {
		var record struct {
			Normal   [3]float32
			Vertices [3][3]float32
			Attr     uint16
		}
		if err := binary.Read(reader, binary.LittleEndian, &record); err != nil {
			return nil, fmt.Errorf("%w: failed to read triangle %d: %w", ErrMalformed, i, err)
		}
		for _, v := range record.Vertices {
			vertices = append(vertices, geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2])))
		}
	}

	return buildTriangles(name, vertices)
}

// buildTriangles groups a flat vertex sequence into consecutive chunks of
// three, assigning each triangle the default normal.
func buildTriangles(name string, vertices []geometry.Vector3) (*Model, error) {
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: vertex count %d is not a multiple of 3", ErrMalformed, len(vertices))
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%w: no triangles found in STL file", ErrEmptyMesh)
	}

	model := NewModel(name)
	for i := 0; i < len(vertices); i += 3 {
		model.AddTriangle(geometry.NewTriangle(
			defaultNormal,
			vertices[i],
			vertices[i+1],
			vertices[i+2],
		))
	}
	return model, nil
}
