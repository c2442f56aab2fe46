// This file is part of rcmapper.
//
// rcmapper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rcmapper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rcmapper.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter paces a loop to a fixed rate.
//
// A new Limiter is created with (error handling removed for clarity):
//
//	lim, _ := limiter.NewLimiter(50)
//	defer lim.Stop()
//
// The loop is then paced with the Wait() function. For example:
//
//	for lim.Wait(ctx) == nil {
//		inp.Cycle()
//	}
package limiter

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rcmapper/rcmapper/curated"
)

// InvalidRate is the pattern of the error returned when the rate is not
// positive.
const InvalidRate = "limiter: invalid rate: %d"

// Limiter ticks at a fixed rate. Drift caused by scheduling delays is
// corrected on the following tick.
type Limiter struct {
	rate   atomic.Int64
	period atomic.Int64

	tick chan bool
	stop chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is in ticks per second.
func NewLimiter(rate int) (*Limiter, error) {
	lim := &Limiter{
		tick: make(chan bool),
		stop: make(chan bool),
	}

	if err := lim.SetRate(rate); err != nil {
		return nil, err
	}

	go func() {
		t := time.Now()
		adjusted := time.Duration(lim.period.Load())
		for {
			select {
			case lim.tick <- true:
			case <-lim.stop:
				return
			}

			period := time.Duration(lim.period.Load())
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - period

			// a long stall would otherwise cause a burst of ticks
			if adjusted < 0 || adjusted > period {
				adjusted = period
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetRate changes the number of ticks per second.
func (lim *Limiter) SetRate(rate int) error {
	if rate <= 0 {
		return curated.Errorf(InvalidRate, rate)
	}
	lim.rate.Store(int64(rate))
	lim.period.Store(int64(time.Second / time.Duration(rate)))
	return nil
}

// Rate returns the current number of ticks per second.
func (lim *Limiter) Rate() int {
	return int(lim.rate.Load())
}

// Wait blocks until the next tick or until the context is done, in which case
// the error from the context is returned.
func (lim *Limiter) Wait(ctx context.Context) error {
	select {
	case <-lim.tick:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HasWaited returns true if a tick is due and false if it is yet to happen.
// It never blocks.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. It should not be used after it has been stopped.
func (lim *Limiter) Stop() {
	close(lim.stop)
}
