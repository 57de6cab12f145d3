package game

import "math"

// RectOverlap tests two axis-aligned rectangles given by center and half size.
// When they overlap it returns the minimum translation vector that moves the
// first rectangle out of the second along the axis of least penetration.
// On equal penetration the Y axis wins. Rectangles with a zero or negative
// half size never collide.
func RectOverlap(centerA, halfA, centerB, halfB Vec2) (Vec2, bool) {
	if halfA.X <= 0 || halfA.Y <= 0 || halfB.X <= 0 || halfB.Y <= 0 {
		return Vec2{}, false
	}

	dx := centerA.X - centerB.X
	intrusionX := halfA.X + halfB.X - math.Abs(dx)
	if intrusionX <= 0 {
		return Vec2{}, false
	}

	dy := centerA.Y - centerB.Y
	intrusionY := halfA.Y + halfB.Y - math.Abs(dy)
	if intrusionY <= 0 {
		return Vec2{}, false
	}

	projection := Vec2{
		X: math.Copysign(intrusionX, dx),
		Y: math.Copysign(intrusionY, dy),
	}
	if math.Abs(projection.X) >= math.Abs(projection.Y) {
		projection.X = 0
	} else {
		projection.Y = 0
	}
	return projection, true
}

// EllipticNormal returns the unit surface normal used to bounce a moving object
// off an obstacle centered at obstacleCenter.
//
// The angle of the offset from the obstacle, folded into the first quadrant, is
// remapped as (angle/90)^exponent * 90 before the quadrant is restored. Larger
// exponents make the obstacle behave more like a flat face: hits near its
// middle reflect almost horizontally and only hits near the tips deflect
// sharply.
func EllipticNormal(position, obstacleCenter Vec2, exponent float64) Vec2 {
	diff := position.Sub(obstacleCenter)

	angle := math.Atan2(math.Abs(diff.Y), math.Abs(diff.X)) * 180 / math.Pi
	warped := math.Pow(angle/90, exponent) * 90

	if diff.X < 0 {
		warped = 180 - warped
	}
	if diff.Y < 0 {
		warped = -warped
	}
	return VectorFromPolar(1, warped)
}

// VectorFromPolar converts a radius and an angle in degrees (counterclockwise
// from +X) to a Cartesian vector.
func VectorFromPolar(radius, angleDegrees float64) Vec2 {
	rad := angleDegrees * math.Pi / 180
	return Vec2{
		X: radius * math.Cos(rad),
		Y: radius * math.Sin(rad),
	}
}
