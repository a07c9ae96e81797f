package geometry

import "math"

// Quaternion represents a rotation as a unit quaternion (x, y, z, w)
type Quaternion struct {
	X, Y, Z, W float64
}

// IdentityQuaternion returns the no-rotation quaternion
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// QuaternionFromAxisAngle builds a rotation of angle radians around axis.
// The axis does not need to be normalized.
func QuaternionFromAxisAngle(axis Vector3, angle float64) Quaternion {
	a := axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{
		X: a.X * s,
		Y: a.Y * s,
		Z: a.Z * s,
		W: math.Cos(angle / 2),
	}
}

// QuaternionBetween returns the minimal rotation carrying unit vector from
// onto unit vector to. Antiparallel inputs rotate 180 degrees around an
// arbitrary perpendicular axis.
func QuaternionBetween(from, to Vector3) Quaternion {
	d := from.Dot(to)
	if d >= 1.0-1e-12 {
		return IdentityQuaternion()
	}
	if d <= -1.0+1e-12 {
		// Opposite directions: any perpendicular axis works
		axis := NewVector3(1, 0, 0).Cross(from)
		if axis.Length() < 1e-6 {
			axis = NewVector3(0, 1, 0).Cross(from)
		}
		return QuaternionFromAxisAngle(axis, math.Pi)
	}
	c := from.Cross(to)
	q := Quaternion{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}
	return q.Normalize()
}

// Mul returns the Hamilton product q*other. Applying the result rotates by
// other first, then by q.
func (q Quaternion) Mul(other Quaternion) Quaternion {
	return Quaternion{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Conjugate returns the inverse rotation for a unit quaternion
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// Length returns the quaternion magnitude
func (q Quaternion) Length() float64 {
	return math.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize returns the unit quaternion in the same orientation.
// The zero quaternion normalizes to identity.
func (q Quaternion) Normalize() Quaternion {
	l := q.Length()
	if l == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// Dot returns the four-component dot product of two quaternions
func (q Quaternion) Dot(other Quaternion) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Apply rotates vector v by the quaternion
func (q Quaternion) Apply(v Vector3) Vector3 {
	// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + w*v)
	u := NewVector3(q.X, q.Y, q.Z)
	t := u.Cross(v).Add(v.Mul(q.W))
	return v.Add(u.Cross(t).Mul(2))
}

// EqualsOrientation reports whether two unit quaternions describe the same
// rotation within tolerance. q and -q are the same orientation.
func (q Quaternion) EqualsOrientation(other Quaternion, tolerance float64) bool {
	return math.Abs(q.Dot(other)) > 1.0-tolerance
}
