package pkg

import (
	"fmt"
	"time"
)

const (
	BaseInterval = 800 * time.Millisecond
	LevelStep    = 70 * time.Millisecond
	MinInterval  = 80 * time.Millisecond
)

// Interval is the gravity period at level. It shortens by LevelStep per level
// and never drops below MinInterval.
func Interval(level int) time.Duration {
	if level < 1 {
		level = 1
	}

	d := BaseInterval - time.Duration(level-1)*LevelStep
	if d < MinInterval {
		return MinInterval
	}
	return d
}

// Clock delivers gravity ticks on C. It is owned by a single goroutine.
type Clock struct {
	Level  int
	Paused bool
	C      <-chan time.Time

	ticker *time.Ticker
}

func (cl *Clock) String() string {
	return fmt.Sprintf("level %d every %s", cl.Level, Interval(cl.Level))
}

func NewClock(level int) *Clock {
	ticker := time.NewTicker(Interval(level))
	return &Clock{
		Level:  level,
		C:      ticker.C,
		ticker: ticker,
	}
}

func (cl *Clock) SetLevel(level int) {
	cl.Level = level
	if !cl.Paused {
		cl.ticker.Reset(Interval(level))
	}
}

// Pause stops the ticker and discards a tick it already delivered, so the
// first tick after Resume is a full interval away.
func (cl *Clock) Pause() {
	cl.Paused = true
	cl.ticker.Stop()

	select {
	case <-cl.C:
	default:
	}
}

func (cl *Clock) Resume() {
	cl.Paused = false
	cl.ticker.Reset(Interval(cl.Level))
}

func (cl *Clock) Stop() {
	cl.ticker.Stop()
}
