package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"

	"github.com/alpacahq/bizdate/calendar"
	"github.com/alpacahq/bizdate/date"
	"github.com/alpacahq/bizdate/utils/log"
)

const defaultMaxSearchDays = 366

var InstanceConfig = BizdateConfig{
	LogLevel:        log.WARNING,
	DefaultCalendar: calendar.BondName,
	MaxSearchDays:   defaultMaxSearchDays,
}

// CalendarSetting describes a calendar to register on top of BOND and STOCK.
type CalendarSetting struct {
	Name           string
	Base           string
	Timezone       string
	OpenTime       string
	CloseTime      string
	EarlyCloseTime string
	NonTradingDays []date.Date
	EarlyCloses    []date.Date
}

type BizdateConfig struct {
	LogLevel        log.Level
	DefaultCalendar string
	MaxSearchDays   int
	Calendars       []*CalendarSetting
}

// ParseConfig parses a YAML configuration.
func ParseConfig(data []byte) (*BizdateConfig, error) {
	var aux struct {
		LogLevel        string `yaml:"log_level"`
		DefaultCalendar string `yaml:"default_calendar"`
		MaxSearchDays   int    `yaml:"max_search_days"`
		Calendars       []struct {
			Name           string      `yaml:"name"`
			Base           string      `yaml:"base"`
			Timezone       string      `yaml:"timezone"`
			OpenTime       string      `yaml:"open_time"`
			CloseTime      string      `yaml:"close_time"`
			EarlyCloseTime string      `yaml:"early_close_time"`
			NonTradingDays []date.Date `yaml:"non_trading_days"`
			EarlyCloses    []date.Date `yaml:"early_closes"`
		} `yaml:"calendars"`
	}

	if err := yaml.Unmarshal(data, &aux); err != nil {
		return nil, fmt.Errorf("parse yaml config: %w", err)
	}

	m := newConfig(aux.LogLevel, aux.DefaultCalendar)
	for _, c := range aux.Calendars {
		m.Calendars = append(m.Calendars, &CalendarSetting{
			Name:           c.Name,
			Base:           c.Base,
			Timezone:       c.Timezone,
			OpenTime:       c.OpenTime,
			CloseTime:      c.CloseTime,
			EarlyCloseTime: c.EarlyCloseTime,
			NonTradingDays: c.NonTradingDays,
			EarlyCloses:    c.EarlyCloses,
		})
	}
	if err := m.validate(aux.MaxSearchDays); err != nil {
		return nil, err
	}
	return m, nil
}

// fileCalendar mirrors CalendarSetting but keeps dates as strings to make
// TOML friendly.
type fileCalendar struct {
	Name           string   `toml:"name"`
	Base           string   `toml:"base"`
	Timezone       string   `toml:"timezone"`
	OpenTime       string   `toml:"open_time"`
	CloseTime      string   `toml:"close_time"`
	EarlyCloseTime string   `toml:"early_close_time"`
	NonTradingDays []string `toml:"non_trading_days"`
	EarlyCloses    []string `toml:"early_closes"`
}

// ParseTOMLConfig parses a TOML configuration with the same keys as the
// YAML one.
func ParseTOMLConfig(data []byte) (*BizdateConfig, error) {
	var fc struct {
		LogLevel        string          `toml:"log_level"`
		DefaultCalendar string          `toml:"default_calendar"`
		MaxSearchDays   int             `toml:"max_search_days"`
		Calendars       []*fileCalendar `toml:"calendars"`
	}
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse toml config: %w", err)
	}

	m := newConfig(fc.LogLevel, fc.DefaultCalendar)
	for _, c := range fc.Calendars {
		setting := &CalendarSetting{
			Name:           c.Name,
			Base:           c.Base,
			Timezone:       c.Timezone,
			OpenTime:       c.OpenTime,
			CloseTime:      c.CloseTime,
			EarlyCloseTime: c.EarlyCloseTime,
		}
		var err error
		if setting.NonTradingDays, err = parseDates(c.NonTradingDays); err != nil {
			return nil, fmt.Errorf("calendar %s non_trading_days: %w", c.Name, err)
		}
		if setting.EarlyCloses, err = parseDates(c.EarlyCloses); err != nil {
			return nil, fmt.Errorf("calendar %s early_closes: %w", c.Name, err)
		}
		m.Calendars = append(m.Calendars, setting)
	}
	if err := m.validate(fc.MaxSearchDays); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadConfig reads path, as TOML when it ends in .toml and as YAML otherwise.
func LoadConfig(path string) (*BizdateConfig, error) {
	return LoadConfigFs(afero.NewOsFs(), path)
}

// LoadConfigFs is LoadConfig on the file system fs.
func LoadConfigFs(fs afero.Fs, path string) (*BizdateConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file error: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOMLConfig(data)
	}
	return ParseConfig(data)
}

func newConfig(logLevel, defaultCalendar string) *BizdateConfig {
	m := &BizdateConfig{
		LogLevel:        InstanceConfig.LogLevel,
		DefaultCalendar: calendar.BondName,
		MaxSearchDays:   defaultMaxSearchDays,
	}
	if logLevel != "" {
		m.LogLevel = log.ParseLevel(logLevel)
	}
	if defaultCalendar != "" {
		m.DefaultCalendar = strings.ToUpper(strings.TrimSpace(defaultCalendar))
	}
	return m
}

func (m *BizdateConfig) validate(maxSearchDays int) error {
	switch {
	case maxSearchDays < 0:
		return fmt.Errorf("invalid max_search_days: %d", maxSearchDays)
	case maxSearchDays > 0:
		m.MaxSearchDays = maxSearchDays
	}
	for i, c := range m.Calendars {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("calendar #%d: name is required", i+1)
		}
	}
	return nil
}

func parseDates(in []string) ([]date.Date, error) {
	out := make([]date.Date, 0, len(in))
	for _, s := range in {
		d, err := date.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// Definition converts the setting to a calendar.Definition.
func (c *CalendarSetting) Definition() calendar.Definition {
	def := calendar.Definition{
		Name:           c.Name,
		Base:           c.Base,
		Timezone:       c.Timezone,
		OpenTime:       c.OpenTime,
		CloseTime:      c.CloseTime,
		EarlyCloseTime: c.EarlyCloseTime,
	}
	for _, d := range c.NonTradingDays {
		def.NonTradingDays = append(def.NonTradingDays, d.AsExternal())
	}
	for _, d := range c.EarlyCloses {
		def.EarlyCloses = append(def.EarlyCloses, d.AsExternal())
	}
	return def
}

// Apply registers the configured calendars in r and makes m the settings
// the date package and the logger run with. Nothing is changed when m is
// invalid.
func (m *BizdateConfig) Apply(r *calendar.Registry) error {
	cals := make([]*calendar.Calendar, 0, len(m.Calendars))
	names := map[string]bool{}
	for _, c := range m.Calendars {
		cal, err := calendar.FromDefinition(c.Definition())
		if err != nil {
			return err
		}
		cals = append(cals, cal)
		names[cal.Name()] = true
	}
	if !names[strings.ToUpper(strings.TrimSpace(m.DefaultCalendar))] {
		if _, err := r.Lookup(m.DefaultCalendar); err != nil {
			return fmt.Errorf("default_calendar: %w", err)
		}
	}

	for _, cal := range cals {
		r.Register(cal)
		log.Info("registered calendar %s", cal.Name())
	}
	log.SetLevel(m.LogLevel)
	date.DefaultCalendar = m.DefaultCalendar
	date.MaxBizdaySearch = m.MaxSearchDays
	InstanceConfig = *m
	return nil
}
