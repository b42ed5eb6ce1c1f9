package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// LerpVec3 linearly interpolates between two vectors.
func LerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// QuadraticBezier returns the point at t on the quadratic curve from a to c with b as control point.
func QuadraticBezier(a, b, c mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	return a.Mul(u * u).Add(b.Mul(2 * u * t)).Add(c.Mul(t * t))
}

// WrapYawDelta wraps an angle delta into the [-180, 180] range.
func WrapYawDelta(delta float32) float32 {
	delta = math32.Mod(delta, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return delta
}

// LerpLook interpolates a look rotation (pitch, yaw, roll) taking the shortest path on the yaw axis.
func LerpLook(from, to mgl32.Vec3, t float32) mgl32.Vec3 {
	delta := to.Sub(from)
	delta[1] = WrapYawDelta(delta[1])
	return from.Add(delta.Mul(t))
}

// DirectionVector returns a direction vector from the given yaw and pitch values.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	yawRad, pitchRad := mgl32.DegToRad(yaw), mgl32.DegToRad(pitch)
	m := math32.Cos(pitchRad)

	return mgl32.Vec3{
		-m * math32.Sin(yawRad),
		-math32.Sin(pitchRad),
		m * math32.Cos(yawRad),
	}
}

// LookAt returns the look rotation (pitch, yaw, 0) of a viewer at from facing to. It is the inverse
// of DirectionVector.
func LookAt(from, to mgl32.Vec3) mgl32.Vec3 {
	dir := to.Sub(from)
	if dir.LenSqr() < 1e-8 {
		return mgl32.Vec3{}
	}
	yaw := mgl32.RadToDeg(math32.Atan2(-dir.X(), dir.Z()))
	pitch := mgl32.RadToDeg(math32.Atan2(-dir.Y(), math32.Sqrt(Vec3HzDistSqr(dir))))
	return mgl32.Vec3{pitch, yaw, 0}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// ClampVec3 clamps every axis of a vector to [-limit, limit].
func ClampVec3(vec mgl32.Vec3, limit float32) mgl32.Vec3 {
	for i := range vec {
		vec[i] = ClampFloat(vec[i], -limit, limit)
	}
	return vec
}

// EulerToQuat builds a rotation from an (pitch, yaw, roll) vector given in degrees.
func EulerToQuat(euler mgl32.Vec3) mgl32.Quat {
	return mgl32.AnglesToQuat(
		mgl32.DegToRad(euler[0]),
		mgl32.DegToRad(euler[1]),
		mgl32.DegToRad(euler[2]),
		mgl32.XYZ,
	)
}
