package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/stlsplit/pkg/geometry"
	"github.com/philipparndt/stlsplit/pkg/stl"
)

// ModelStats contains various measurements of an STL model
type ModelStats struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64
	SurfaceArea   float64
	TriangleCount int
	EdgeCount     int
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// AnalyzeModel computes summary statistics for an STL model
func AnalyzeModel(model *stl.Model) *ModelStats {
	stats := &ModelStats{
		BoundingBox:   model.BoundingBox(),
		SurfaceArea:   model.SurfaceArea(),
		TriangleCount: model.TriangleCount(),
	}
	stats.Dimensions = stats.BoundingBox.Size()
	stats.Volume = stats.BoundingBox.Volume()

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, triangle := range model.Triangles {
		for _, length := range triangle.EdgeLengths() {
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
		totalLength += triangle.Perimeter()
	}

	stats.EdgeCount = 3 * stats.TriangleCount
	if stats.EdgeCount > 0 {
		stats.MinEdgeLength = minLength
		stats.MaxEdgeLength = maxLength
		stats.AvgEdgeLength = totalLength / float64(stats.EdgeCount)
	}

	return stats
}

// FormatVector formats a 3D point for console output
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
