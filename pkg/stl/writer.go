package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/philipparndt/stlsplit/pkg/geometry"
)

// Write serializes a triangle list to a binary STL file, creating or
// truncating the file at the given path. An empty triangle list is valid
// and produces a zero-facet file.
func Write(filename, name string, triangles []geometry.Triangle) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	// The header must not begin with "solid", or format heuristics read
	// the file as ASCII. A fixed banner precedes the model name.
	var header [80]byte
	copy(header[:], "STLB "+name)
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return fmt.Errorf("failed to write triangle count: %w", err)
	}

	for i, triangle := range triangles {
		record := struct {
			Normal   [3]float32
			Vertices [3][3]float32
			Attr     uint16
		}{
			Normal: vec32(triangle.Normal),
			Vertices: [3][3]float32{
				vec32(triangle.V1),
				vec32(triangle.V2),
				vec32(triangle.V3),
			},
		}
		if err := binary.Write(w, binary.LittleEndian, record); err != nil {
			return fmt.Errorf("failed to write triangle %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return nil
}

// WriteASCII serializes a triangle list to an ASCII STL file.
func WriteASCII(filename, name string, triangles []geometry.Triangle) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "solid %s\n", name)
	for _, triangle := range triangles {
		fmt.Fprintf(w, "  facet normal %g %g %g\n", triangle.Normal.X, triangle.Normal.Y, triangle.Normal.Z)
		fmt.Fprintf(w, "    outer loop\n")
		for _, v := range triangle.Vertices() {
			fmt.Fprintf(w, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintf(w, "    endloop\n")
		fmt.Fprintf(w, "  endfacet\n")
	}
	if _, err := fmt.Fprintf(w, "endsolid %s\n", name); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush file: %w", err)
	}
	return nil
}

// vec32 narrows a vector to the 32-bit precision the STL format stores.
func vec32(v geometry.Vector3) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
