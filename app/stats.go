package app

import "time"

// frameStats counts frames and reports the frame rate once per interval.
type frameStats struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	now            func() time.Time
}

func newFrameStats(now func() time.Time) *frameStats {
	return &frameStats{
		lastTime:       now(),
		updateInterval: time.Second,
		now:            now,
	}
}

// tick records one frame. It returns the frames per second and true when
// the update interval has elapsed.
func (s *frameStats) tick() (float64, bool) {
	s.frameCount++
	current := s.now()
	elapsed := current.Sub(s.lastTime)
	if elapsed < s.updateInterval {
		return 0, false
	}

	fps := float64(s.frameCount) / elapsed.Seconds()
	s.frameCount = 0
	s.lastTime = current
	return fps, true
}
