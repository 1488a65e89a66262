package calendar

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultOpenTime       = "09:30:00"
	DefaultCloseTime      = "16:00:00"
	DefaultEarlyCloseTime = "13:00:00"
)

// Definition describes a calendar: a base rule set plus ad hoc closures and
// early closes. Empty session times fall back to the NYSE defaults and an
// empty timezone means UTC.
type Definition struct {
	Name           string
	Base           string
	Timezone       string
	OpenTime       string
	CloseTime      string
	EarlyCloseTime string
	NonTradingDays []time.Time
	EarlyCloses    []time.Time
}

type calendarJSON struct {
	Base           string   `json:"base"`
	NonTradingDays []string `json:"non_trading_days"`
	EarlyCloses    []string `json:"early_closes"`
	Timezone       string   `json:"timezone"`
	OpenTime       string   `json:"open_time"`
	CloseTime      string   `json:"close_time"`
	EarlyCloseTime string   `json:"early_close_time"`
}

// New builds a calendar named name from its JSON description.
func New(name, calendarJSONStr string) (*Calendar, error) {
	cmap := calendarJSON{}
	if err := json.Unmarshal([]byte(calendarJSONStr), &cmap); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidCalendar, name, err)
	}
	def := Definition{
		Name:           name,
		Base:           cmap.Base,
		Timezone:       cmap.Timezone,
		OpenTime:       cmap.OpenTime,
		CloseTime:      cmap.CloseTime,
		EarlyCloseTime: cmap.EarlyCloseTime,
	}
	var err error
	if def.NonTradingDays, err = parseDays(name, cmap.NonTradingDays); err != nil {
		return nil, err
	}
	if def.EarlyCloses, err = parseDays(name, cmap.EarlyCloses); err != nil {
		return nil, err
	}
	return FromDefinition(def)
}

func parseDays(name string, days []string) ([]time.Time, error) {
	out := make([]time.Time, 0, len(days))
	for _, dateString := range days {
		t, err := time.Parse("2006-01-02", dateString)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: bad date %q", ErrInvalidCalendar, name, dateString)
		}
		out = append(out, t)
	}
	return out, nil
}

// FromDefinition builds a calendar from def.
func FromDefinition(def Definition) (*Calendar, error) {
	name := strings.ToUpper(strings.TrimSpace(def.Name))
	if name == "" {
		return nil, fmt.Errorf("%w: calendar name is empty", ErrInvalidCalendar)
	}
	rules, err := rulesFor(def.Base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	cal := Calendar{name: name, rules: rules, days: map[int]MarketState{}}
	for _, t := range def.NonTradingDays {
		cal.days[julianDate(t)] = Closed
	}
	for _, t := range def.EarlyCloses {
		cal.days[julianDate(t)] = EarlyClose
	}
	// Giving "" to LoadLocation will be UTC anyway.
	if cal.tz, err = time.LoadLocation(def.Timezone); err != nil {
		return nil, fmt.Errorf("%w: %s: timezone %q: %v", ErrInvalidCalendar, name, def.Timezone, err)
	}
	if cal.openTime, err = ParseTime(orDefault(def.OpenTime, DefaultOpenTime)); err != nil {
		return nil, fmt.Errorf("%s: open_time: %w", name, err)
	}
	if cal.closeTime, err = ParseTime(orDefault(def.CloseTime, DefaultCloseTime)); err != nil {
		return nil, fmt.Errorf("%s: close_time: %w", name, err)
	}
	if cal.earlyCloseTime, err = ParseTime(orDefault(def.EarlyCloseTime, DefaultEarlyCloseTime)); err != nil {
		return nil, fmt.Errorf("%s: early_close_time: %w", name, err)
	}
	return &cal, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func mustNew(name, calendarJSONStr string) *Calendar {
	c, err := New(name, calendarJSONStr)
	if err != nil {
		panic(err)
	}
	return c
}
