package discord

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Cooldown allows one use per period for each user
type Cooldown struct {
	mu     sync.Mutex
	period time.Duration
	users  map[string]*bucket
}

type bucket struct {
	lim  *rate.Limiter
	seen time.Time
}

// NewCooldown creates a per-user cooldown; period <= 0 disables it
func NewCooldown(period time.Duration) *Cooldown {
	return &Cooldown{period: period, users: map[string]*bucket{}}
}

// Allow consumes the user's token at now or reports how long until one is free
func (c *Cooldown) Allow(user string, now time.Time) (bool, time.Duration) {
	if c == nil || c.period <= 0 {
		return true, 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.prune(now)
	b, ok := c.users[user]
	if !ok {
		b = &bucket{lim: rate.NewLimiter(rate.Every(c.period), 1)}
		c.users[user] = b
	}
	b.seen = now

	r := b.lim.ReserveN(now, 1)
	if d := r.DelayFrom(now); d > 0 {
		r.CancelAt(now)
		return false, d
	}
	return true, 0
}

// prune drops users whose bucket has refilled; caller holds mu
func (c *Cooldown) prune(now time.Time) {
	for u, b := range c.users {
		if now.Sub(b.seen) >= c.period {
			delete(c.users, u)
		}
	}
}

// Len is the number of users currently tracked
func (c *Cooldown) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.users)
}
