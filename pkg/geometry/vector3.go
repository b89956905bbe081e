package geometry

import "math"

// Vector3 represents a 3D point or vector
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub returns the difference between two vectors
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies the vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Min returns a vector with the minimum components of two vectors.
// Unlike math.Min, a NaN component in other never replaces the receiver's value.
func (v Vector3) Min(other Vector3) Vector3 {
	return Vector3{
		X: minComponent(v.X, other.X),
		Y: minComponent(v.Y, other.Y),
		Z: minComponent(v.Z, other.Z),
	}
}

// Max returns a vector with the maximum components of two vectors
func (v Vector3) Max(other Vector3) Vector3 {
	return Vector3{
		X: maxComponent(v.X, other.X),
		Y: maxComponent(v.Y, other.Y),
		Z: maxComponent(v.Z, other.Z),
	}
}

// Length returns the magnitude of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func minComponent(cur, val float64) float64 {
	if val < cur {
		return val
	}
	return cur
}

func maxComponent(cur, val float64) float64 {
	if val > cur {
		return val
	}
	return cur
}
