package dispatch

import "time"

// Debouncer suppresses repeats of the same key inside a cooldown window.
// Speech recognition likes to deliver the same command twice in a row;
// this is the guard against double side effects. Single goroutine only.
type Debouncer struct {
	now     func() time.Time
	lastKey string
	lastAt  time.Time
}

func NewDebouncer() *Debouncer {
	return &Debouncer{now: time.Now}
}

// Allow reports whether the action keyed by key may run now, and records
// it when it may. A duplicate inside the cooldown is rejected without
// refreshing the record, so a stream of repeats cannot extend the window.
func (d *Debouncer) Allow(key string, cooldown time.Duration) bool {
	t := d.now()
	if key == d.lastKey && t.Sub(d.lastAt) < cooldown {
		return false
	}
	d.lastKey = key
	d.lastAt = t
	return true
}
