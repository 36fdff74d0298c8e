package engine

import "time"

// SessionClock measures play time of one session, excluding paused intervals
// Owned by the driver goroutine; not safe for concurrent use
type SessionClock struct {
	timeProvider TimeProvider

	startTime   time.Time
	stopTime    time.Time
	pauseStart  time.Time
	totalPaused time.Duration

	running bool
	paused  bool
}

// NewSessionClock creates a stopped clock reading from tp
func NewSessionClock(tp TimeProvider) *SessionClock {
	return &SessionClock{timeProvider: tp}
}

// Start resets and starts the clock
func (c *SessionClock) Start() {
	c.startTime = c.timeProvider.Now()
	c.stopTime = time.Time{}
	c.pauseStart = time.Time{}
	c.totalPaused = 0
	c.running = true
	c.paused = false
}

// Pause freezes elapsed time until Resume
func (c *SessionClock) Pause() {
	if !c.running || c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.timeProvider.Now()
}

// Resume continues elapsed time accumulation
func (c *SessionClock) Resume() {
	if !c.running || !c.paused {
		return
	}
	c.totalPaused += c.timeProvider.Now().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
	c.paused = false
}

// Stop freezes the clock permanently for this session
func (c *SessionClock) Stop() {
	if !c.running {
		return
	}
	c.Resume()
	c.stopTime = c.timeProvider.Now()
	c.running = false
}

// Elapsed returns active session time
func (c *SessionClock) Elapsed() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}

	end := c.timeProvider.Now()
	switch {
	case !c.running:
		end = c.stopTime
	case c.paused:
		end = c.pauseStart
	}
	return end.Sub(c.startTime) - c.totalPaused
}
