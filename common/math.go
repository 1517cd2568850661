package common

import (
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// epsilon is the squared length below which a vector is treated as degenerate.
const epsilon = 1e-12

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// Normalize returns v scaled to unit length. A degenerate (near zero) vector is
// returned unchanged rather than producing NaN components.
//
// Parameters:
//   - v: the vector to normalize
//
// Returns:
//   - mgl32.Vec3: the unit-length vector, or v if it cannot be normalized
func Normalize(v mgl32.Vec3) mgl32.Vec3 {
	l2 := v.Dot(v)
	if l2 < epsilon {
		return v
	}
	return v.Mul(1 / math32.Sqrt(l2))
}

// AngleBetween returns the unsigned angle between a and b in radians.
// Both vectors are normalized first, so the result is valid for non-unit inputs.
// The cosine is clamped to [-1, 1] to absorb rounding error near parallel vectors.
//
// Parameters:
//   - a: first vector
//   - b: second vector
//
// Returns:
//   - float32: angle in radians in the range [0, π]
func AngleBetween(a, b mgl32.Vec3) float32 {
	cos := Normalize(a).Dot(Normalize(b))
	return math32.Acos(Clamp(cos, -1, 1))
}

// RotateAbout rotates v around axis by the given angle in degrees using the
// right-hand rule. The axis does not need to be unit length.
//
// Parameters:
//   - v: the vector to rotate
//   - degrees: rotation angle in degrees
//   - axis: the rotation axis
//
// Returns:
//   - mgl32.Vec3: the rotated vector
func RotateAbout(v mgl32.Vec3, degrees float32, axis mgl32.Vec3) mgl32.Vec3 {
	return mgl32.QuatRotate(mgl32.DegToRad(degrees), Normalize(axis)).Rotate(v)
}

// Right returns the strafe direction normalize(cross(facing, up)).
//
// Parameters:
//   - facing: the view direction
//   - up: the world up vector
//
// Returns:
//   - mgl32.Vec3: the unit right vector
func Right(facing, up mgl32.Vec3) mgl32.Vec3 {
	return Normalize(facing.Cross(up))
}

// Abs32 returns the absolute value of f.
func Abs32(f float32) float32 {
	return math32.Abs(f)
}
