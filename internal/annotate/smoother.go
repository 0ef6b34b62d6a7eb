package annotate

import (
	"math"
	"time"

	"github.com/example/inkshot/internal/geometry"
)

const (
	smoothMinSpeed = 0.01
	smoothMaxSpeed = 500.0
	smoothMinAlpha = 0.05
	smoothMaxAlpha = 0.5
)

type smoothSample struct {
	p geometry.Vec2D
	t time.Time
}

// Smoother is the trailing filter applied to brush input: raw points
// enter a bounded history whose average is exponentially blended with
// the previous output. The blend factor adapts to pointer speed, so
// slow careful strokes are smoothed hard while fast strokes stay
// responsive. A size of 0 disables the filter entirely.
type Smoother struct {
	size    int
	history []smoothSample
	last    geometry.Vec2D
	hasLast bool
	now     func() time.Time
}

// NewSmoother returns a filter keeping at most size raw points.
func NewSmoother(size int) *Smoother {
	return &Smoother{size: size, now: time.Now}
}

// Reset drops all filter state, for the start of a new stroke.
func (s *Smoother) Reset() {
	s.history = s.history[:0]
	s.hasLast = false
}

// Smooth filters one raw point.
func (s *Smoother) Smooth(p geometry.Vec2D) geometry.Vec2D {
	if s.size == 0 {
		return p
	}
	s.history = append(s.history, smoothSample{p: p, t: s.now()})
	if len(s.history) > s.size {
		s.history = s.history[1:]
	}
	avg := geometry.Vec2D{}
	for _, h := range s.history {
		avg = avg.Add(h.p)
	}
	avg = avg.Mul(1 / float64(len(s.history)))
	if !s.hasLast {
		s.last = avg
		s.hasLast = true
		return avg
	}
	a := s.alpha()
	s.last = s.last.Mul(1 - a).Add(avg.Mul(a))
	return s.last
}

// alpha maps estimated pointer speed into the blend range. The square
// root keeps low speeds from collapsing the factor to nothing.
func (s *Smoother) alpha() float64 {
	oldest := s.history[0]
	newest := s.history[len(s.history)-1]
	elapsed := newest.t.Sub(oldest.t).Seconds()
	speed := smoothMaxSpeed
	if elapsed > 0 {
		speed = newest.p.Sub(oldest.p).Norm() / elapsed
	}
	if speed < smoothMinSpeed {
		speed = smoothMinSpeed
	}
	if speed > smoothMaxSpeed {
		speed = smoothMaxSpeed
	}
	norm := math.Sqrt(speed / smoothMaxSpeed)
	return smoothMinAlpha + (smoothMaxAlpha-smoothMinAlpha)*norm
}
