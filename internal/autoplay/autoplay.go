// Package autoplay drives automatic forward navigation while the lightbox is
// open.
package autoplay

import (
	"sync"
	"time"
)

const defaultInterval = 3 * time.Second

// Player fires an advance callback at a fixed interval while running.
// Start and Stop are idempotent; the callback is never invoked after Stop
// returns a stopped player to its idle state.
type Player struct {
	mu       sync.Mutex
	interval time.Duration
	advance  func()
	stop     chan struct{}
}

// NewPlayer creates a stopped Player. Interval is the time between automatic
// advances; non-positive values fall back to the default.
func NewPlayer(interval time.Duration, advance func()) *Player {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Player{
		interval: interval,
		advance:  advance,
	}
}

// Start begins firing the advance callback. Starting a running player does
// nothing.
func (p *Player) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop != nil {
		return
	}
	stop := make(chan struct{})
	p.stop = stop

	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				p.advance()
			}
		}
	}()
}

// Stop halts automatic advancing. Stopping a stopped player does nothing.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stop == nil {
		return
	}
	close(p.stop)
	p.stop = nil
}

// Toggle flips the play state and reports whether the player is now running.
func (p *Player) Toggle() bool {
	if p.Running() {
		p.Stop()
		return false
	}
	p.Start()
	return true
}

// Running reports whether the player is currently advancing.
func (p *Player) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stop != nil
}

// Interval returns the configured advance interval.
func (p *Player) Interval() time.Duration {
	return p.interval
}
