package core

import "math"

// Matrix4 represents a 4x4 affine transformation matrix (row-major)
type Matrix4 struct {
	M [4][4]float64
}

// Identity returns the identity transform
func Identity() Matrix4 {
	return Matrix4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Translate returns a transform moving points by the given offset
func Translate(offset Vec3) Matrix4 {
	return Matrix4{M: [4][4]float64{
		{1, 0, 0, offset.X},
		{0, 1, 0, offset.Y},
		{0, 0, 1, offset.Z},
		{0, 0, 0, 1},
	}}
}

// Scale returns a transform scaling each axis independently
func Scale(factors Vec3) Matrix4 {
	return Matrix4{M: [4][4]float64{
		{factors.X, 0, 0, 0},
		{0, factors.Y, 0, 0},
		{0, 0, factors.Z, 0},
		{0, 0, 0, 1},
	}}
}

// UniformScale returns a transform scaling all axes by the same factor
func UniformScale(factor float64) Matrix4 {
	return Scale(NewVec3(factor, factor, factor))
}

// RotateX returns a rotation around the X axis by the given angle in radians
func RotateX(angle float64) Matrix4 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Matrix4{M: [4][4]float64{
		{1, 0, 0, 0},
		{0, cos, -sin, 0},
		{0, sin, cos, 0},
		{0, 0, 0, 1},
	}}
}

// RotateY returns a rotation around the Y axis by the given angle in radians
func RotateY(angle float64) Matrix4 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Matrix4{M: [4][4]float64{
		{cos, 0, sin, 0},
		{0, 1, 0, 0},
		{-sin, 0, cos, 0},
		{0, 0, 0, 1},
	}}
}

// RotateZ returns a rotation around the Z axis by the given angle in radians
func RotateZ(angle float64) Matrix4 {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Matrix4{M: [4][4]float64{
		{cos, -sin, 0, 0},
		{sin, cos, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}}
}

// Mul returns the matrix product a * b, applying b first
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.M[r][k] * b.M[k][c]
			}
			result.M[r][c] = sum
		}
	}
	return result
}

// Transpose returns the transposed matrix
func (a Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result.M[r][c] = a.M[c][r]
		}
	}
	return result
}

// TransformPoint applies the transform to a position (homogeneous w=1)
func (a Matrix4) TransformPoint(p Vec3) Vec3 {
	x := a.M[0][0]*p.X + a.M[0][1]*p.Y + a.M[0][2]*p.Z + a.M[0][3]
	y := a.M[1][0]*p.X + a.M[1][1]*p.Y + a.M[1][2]*p.Z + a.M[1][3]
	z := a.M[2][0]*p.X + a.M[2][1]*p.Y + a.M[2][2]*p.Z + a.M[2][3]
	w := a.M[3][0]*p.X + a.M[3][1]*p.Y + a.M[3][2]*p.Z + a.M[3][3]
	if w != 1 && w != 0 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// TransformVector applies the transform to a direction (homogeneous w=0),
// ignoring any translation component
func (a Matrix4) TransformVector(v Vec3) Vec3 {
	return Vec3{
		X: a.M[0][0]*v.X + a.M[0][1]*v.Y + a.M[0][2]*v.Z,
		Y: a.M[1][0]*v.X + a.M[1][1]*v.Y + a.M[1][2]*v.Z,
		Z: a.M[2][0]*v.X + a.M[2][1]*v.Y + a.M[2][2]*v.Z,
	}
}

// Inverse returns the inverse matrix via Gauss-Jordan elimination with
// partial pivoting. The second return value is false iff the matrix is
// singular.
func (a Matrix4) Inverse() (Matrix4, bool) {
	work := a
	result := Identity()

	for col := 0; col < 4; col++ {
		// Find the row with the largest pivot at or below the diagonal
		pivot := col
		for r := col + 1; r < 4; r++ {
			if math.Abs(work.M[r][col]) > math.Abs(work.M[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(work.M[pivot][col]) < 1e-12 {
			return Matrix4{}, false
		}
		if pivot != col {
			work.M[col], work.M[pivot] = work.M[pivot], work.M[col]
			result.M[col], result.M[pivot] = result.M[pivot], result.M[col]
		}

		// Normalize the pivot row
		scale := 1.0 / work.M[col][col]
		for c := 0; c < 4; c++ {
			work.M[col][c] *= scale
			result.M[col][c] *= scale
		}

		// Eliminate the column from all other rows
		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			factor := work.M[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 4; c++ {
				work.M[r][c] -= factor * work.M[col][c]
				result.M[r][c] -= factor * result.M[col][c]
			}
		}
	}

	return result, true
}
