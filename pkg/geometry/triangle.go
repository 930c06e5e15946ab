package geometry

// Triangle represents a triangular facet in 3D space
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// Vertices returns the three vertices in order
func (t Triangle) Vertices() [3]Vector3 {
	return [3]Vector3{t.V1, t.V2, t.V3}
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	edge1 := t.V2.Sub(t.V1)
	edge2 := t.V3.Sub(t.V1)
	cross := edge1.Cross(edge2)
	return cross.Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// MinZ returns the smallest z-coordinate among the three vertices
func (t Triangle) MinZ() float64 {
	z := t.V1.Z
	if t.V2.Z < z {
		z = t.V2.Z
	}
	if t.V3.Z < z {
		z = t.V3.Z
	}
	return z
}

// MaxZ returns the largest z-coordinate among the three vertices
func (t Triangle) MaxZ() float64 {
	z := t.V1.Z
	if t.V2.Z > z {
		z = t.V2.Z
	}
	if t.V3.Z > z {
		z = t.V3.Z
	}
	return z
}
