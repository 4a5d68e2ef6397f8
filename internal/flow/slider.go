package flow

// Slider is the whole-dollar withdrawal slider, always within [0, Max].
type Slider struct {
	value int
	max   int
}

// Reset sets the ceiling and moves the thumb back to zero.
func (s *Slider) Reset(max int) {
	if max < 0 {
		max = 0
	}
	s.max = max
	s.value = 0
}

// Set moves the thumb, clamping to [0, Max].
func (s *Slider) Set(v int) {
	if v < 0 {
		v = 0
	}
	if v > s.max {
		v = s.max
	}
	s.value = v
}

// Scroll moves the thumb by delta, clamping to [0, Max].
func (s *Slider) Scroll(delta int) {
	// avoid overflow on absurd deltas before clamping
	if delta > s.max {
		delta = s.max
	}
	if delta < -s.max {
		delta = -s.max
	}
	s.Set(s.value + delta)
}

// Value returns the thumb position.
func (s Slider) Value() int { return s.value }

// Max returns the ceiling.
func (s Slider) Max() int { return s.max }
