// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// NormalizeAngle wraps an angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)
	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}
	return NormalizeAngle(from + diff*t)
}

// AngleBetween returns the absolute smallest difference between two angles.
func AngleBetween(a, b float64) float64 {
	diff := math.Abs(NormalizeAngle(a) - NormalizeAngle(b))
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	return diff
}

// AngleTo returns the screen-space angle in radians from (x1,y1) to (x2,y2).
// Screen coordinates grow downward, so this is the angle math.Cos/math.Sin
// expect when moving a sprite toward the target.
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Interpolate subdivides each segment of a polyline into the given number
// of evenly spaced points, keeping the input vertices.
func Interpolate(points [][2]float64, subdivisions int) [][2]float64 {
	if len(points) < 2 || subdivisions < 2 {
		return points
	}
	out := make([][2]float64, 0, (len(points)-1)*subdivisions+1)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		for s := 0; s < subdivisions; s++ {
			t := float64(s) / float64(subdivisions)
			out = append(out, [2]float64{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t)})
		}
	}
	return append(out, points[len(points)-1])
}

// StepToward moves current toward target by at most maxDelta and reports
// whether the target was reached.
func StepToward(current, target, maxDelta float64) (float64, bool) {
	diff := target - current
	if math.Abs(diff) <= maxDelta {
		return target, true
	}
	if diff > 0 {
		return current + maxDelta, false
	}
	return current - maxDelta, false
}
