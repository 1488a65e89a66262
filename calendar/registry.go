package calendar

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/alpacahq/bizdate/utils/log"
)

// Registry maps case-insensitive calendar names to calendars.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	calendars map[string]*Calendar
}

// Default holds BOND and STOCK and any calendar loaded from configuration.
var Default = NewRegistry(Bond, Stock)

func NewRegistry(cals ...*Calendar) *Registry {
	r := &Registry{calendars: map[string]*Calendar{}}
	for _, c := range cals {
		r.Register(c)
	}
	return r
}

func normalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Register adds c, replacing any calendar with the same name.
func (r *Registry) Register(c *Calendar) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.calendars[c.name]; ok {
		log.Debug("replacing calendar %s", c.name)
	}
	r.calendars[c.name] = c
}

// Lookup returns the calendar registered under name.
func (r *Registry) Lookup(name string) (*Calendar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.calendars[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
	return c, nil
}

// IsBusinessDay reports whether the calendar date of t is a business day
// under the calendar registered as name.
func (r *Registry) IsBusinessDay(name string, t time.Time) (bool, error) {
	c, err := r.Lookup(name)
	if err != nil {
		return false, err
	}
	return c.IsMarketDay(t), nil
}

// Names returns the registered calendar names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.calendars))
	for n := range r.calendars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
