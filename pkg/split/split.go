// Package split partitions a model's triangles against a horizontal
// cutting plane. Triangles are classified whole; nothing is clipped or
// re-triangulated at the plane.
package split

import (
	"github.com/philipparndt/stlsplit/pkg/geometry"
	"github.com/philipparndt/stlsplit/pkg/stl"
)

// Result holds the two disjoint triangle groups produced by a cut.
// Triangles whose vertices lie on both sides of the plane belong to
// neither group; Dropped counts them.
type Result struct {
	Upper   []geometry.Triangle
	Lower   []geometry.Triangle
	Dropped int
}

// AtZ classifies every triangle of the model against the plane z = height.
// A triangle goes to Upper when all three vertices are at or above the
// plane, to Lower when all three are at or below it. The Upper check is
// evaluated first, so a triangle lying exactly on the plane goes to Upper.
// Source order is preserved within each group.
func AtZ(model *stl.Model, height float64) Result {
	var result Result

	for _, triangle := range model.Triangles {
		switch {
		case triangle.MinZ() >= height:
			result.Upper = append(result.Upper, triangle)
		case triangle.MaxZ() <= height:
			result.Lower = append(result.Lower, triangle)
		default:
			result.Dropped++
		}
	}

	return result
}

// MidZ returns the cutting height the tool uses by default: the vertical
// midpoint of the bounding box.
func MidZ(bbox geometry.BoundingBox) float64 {
	return (bbox.Min.Z + bbox.Max.Z) / 2.0
}
