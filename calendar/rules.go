package calendar

import (
	"fmt"
	"strings"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/us"
)

// Names of the built-in rule sets. A JSON calendar picks one of them
// through its "base" field.
const (
	BondName  = "BOND"
	StockName = "STOCK"
	NoRules   = "WEEKENDS"
)

// noSaturdayShift returns a copy of h that is observed on the following
// Monday when it falls on a Sunday, but not on the preceding Friday when it
// falls on a Saturday. US markets stay open on Dec 31 when Jan 1 is a Saturday.
func noSaturdayShift(h *cal.Holiday) *cal.Holiday {
	c := *h
	c.Observed = []cal.AltDay{{Day: time.Sunday, Offset: 1}}
	return &c
}

// juneteenth is closed for the markets from 2022 on.
func juneteenth() *cal.Holiday {
	c := *us.Juneteenth
	c.StartYear = 2022
	return &c
}

// bondGoodFriday is Good Friday, except the years SIFMA recommended an
// early close instead.
func bondGoodFriday() *cal.Holiday {
	c := *aa.GoodFriday
	c.Except = []int{2015, 2021, 2023}
	return &c
}

// bondRules mirrors the SIFMA recommendations for US government securities.
func bondRules() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		noSaturdayShift(us.NewYear),
		us.MlkDay,
		us.PresidentsDay,
		bondGoodFriday(),
		us.MemorialDay,
		juneteenth(),
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		noSaturdayShift(us.VeteransDay),
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return c
}

// stockRules mirrors the NYSE holiday schedule.
func stockRules() *cal.BusinessCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		noSaturdayShift(us.NewYear),
		us.MlkDay,
		us.PresidentsDay,
		aa.GoodFriday,
		us.MemorialDay,
		juneteenth(),
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return c
}

// rulesFor returns the rule set for base. An empty base means weekends only.
func rulesFor(base string) (*cal.BusinessCalendar, error) {
	switch strings.ToUpper(strings.TrimSpace(base)) {
	case BondName:
		return bondRules(), nil
	case StockName:
		return stockRules(), nil
	case "", NoRules:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown base rule set %q", ErrInvalidCalendar, base)
	}
}
