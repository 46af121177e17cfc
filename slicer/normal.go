package slicer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// normalSum accumulates the normal pool of one slice.
type normalSum struct {
	sum mgl32.Vec3
	n   int
}

func (s *normalSum) add(n mgl32.Vec3) {
	s.sum[0] += n[0]
	s.sum[1] += n[1]
	s.sum[2] += n[2]
	s.n++
}

// average returns the component-wise mean, scaled to unit length when that
// length exceeds Epsilon. A mean shorter than Epsilon is returned as is.
func (s *normalSum) average() mgl32.Vec3 {
	if s.n == 0 {
		return mgl32.Vec3{}
	}
	k := float32(s.n)
	avg := mgl32.Vec3{s.sum[0] / k, s.sum[1] / k, s.sum[2] / k}
	l := float32(math.Sqrt(float64(avg[0]*avg[0] + avg[1]*avg[1] + avg[2]*avg[2])))
	if l > Epsilon {
		avg[0] /= l
		avg[1] /= l
		avg[2] /= l
	}
	return avg
}

// AverageNormal returns the normalized mean of normals. Normals that cancel
// out leave a degenerate mean shorter than Epsilon, which is returned
// without normalization. An empty list yields the zero vector.
func AverageNormal(normals []mgl32.Vec3) mgl32.Vec3 {
	var s normalSum
	for _, n := range normals {
		s.add(n)
	}
	return s.average()
}
