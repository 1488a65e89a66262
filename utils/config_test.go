package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpacahq/bizdate/calendar"
	"github.com/alpacahq/bizdate/date"
	"github.com/alpacahq/bizdate/utils/log"
)

const yamlConfig = `
log_level: debug
default_calendar: desk
max_search_days: 30
calendars:
  - name: desk
    base: bond
    timezone: America/Chicago
    open_time: "08:30"
    close_time: "15:00"
    non_trading_days:
      - 2020-10-13
      - 20201014
      - "2020.10.15"
    early_closes:
      - 2020-10-16
`

const tomlConfig = `
log_level = "error"
default_calendar = "desk"

[[calendars]]
name = "desk"
base = "stock"
non_trading_days = ["2020-10-13", "20201014"]
early_closes = ["2020.10.16"]
`

func TestParseConfig(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig([]byte(yamlConfig))
	require.NoError(t, err)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, "DESK", cfg.DefaultCalendar)
	assert.Equal(t, 30, cfg.MaxSearchDays)
	require.Len(t, cfg.Calendars, 1)

	c := cfg.Calendars[0]
	assert.Equal(t, "desk", c.Name)
	assert.Equal(t, "bond", c.Base)
	assert.Equal(t, "08:30", c.OpenTime)
	assert.Equal(t, []date.Date{
		date.MustNew(2020, 10, 13),
		date.MustNew(2020, 10, 14),
		date.MustNew(2020, 10, 15),
	}, c.NonTradingDays)
	assert.Equal(t, []date.Date{date.MustNew(2020, 10, 16)}, c.EarlyCloses)
}

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig([]byte("calendars: []\n"))
	require.NoError(t, err)
	assert.Equal(t, calendar.BondName, cfg.DefaultCalendar)
	assert.Equal(t, defaultMaxSearchDays, cfg.MaxSearchDays)
	assert.Empty(t, cfg.Calendars)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig([]byte("max_search_days: -1\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("calendars:\n  - base: bond\n"))
	assert.Error(t, err)

	_, err = ParseConfig([]byte("calendars:\n  - name: desk\n    non_trading_days: [2020-02-30]\n"))
	assert.True(t, errors.Is(err, date.ErrInvalidDate))

	_, err = ParseConfig([]byte("calendars: [\n"))
	assert.Error(t, err)

	_, err = ParseTOMLConfig([]byte("[[calendars]]\nname = \"desk\"\nearly_closes = [\"2020-13-01\"]\n"))
	assert.True(t, errors.Is(err, date.ErrInvalidDate))
}

func TestParseTOMLConfig(t *testing.T) {
	t.Parallel()
	cfg, err := ParseTOMLConfig([]byte(tomlConfig))
	require.NoError(t, err)
	assert.Equal(t, log.ERROR, cfg.LogLevel)
	assert.Equal(t, "DESK", cfg.DefaultCalendar)
	assert.Equal(t, defaultMaxSearchDays, cfg.MaxSearchDays)
	require.Len(t, cfg.Calendars, 1)
	assert.Equal(t, "stock", cfg.Calendars[0].Base)
	assert.Equal(t, []date.Date{date.MustNew(2020, 10, 13), date.MustNew(2020, 10, 14)}, cfg.Calendars[0].NonTradingDays)
	assert.Equal(t, []date.Date{date.MustNew(2020, 10, 16)}, cfg.Calendars[0].EarlyCloses)
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/bizdate.yml", []byte(yamlConfig), 0o600))
	require.NoError(t, afero.WriteFile(fs, "/etc/bizdate.TOML", []byte(tomlConfig), 0o600))

	cfg, err := LoadConfigFs(fs, "/etc/bizdate.yml")
	require.NoError(t, err)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)

	cfg, err = LoadConfigFs(fs, "/etc/bizdate.TOML")
	require.NoError(t, err)
	assert.Equal(t, log.ERROR, cfg.LogLevel)

	_, err = LoadConfigFs(fs, "/etc/missing.yml")
	assert.Error(t, err)
}

func TestLoadConfigFromDisk(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bizdate.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "DESK", cfg.DefaultCalendar)
}

// nolint:paralleltest // Apply changes package level settings
func TestApply(t *testing.T) {
	defer func(cal string, maxSearch int, level log.Level, cfg BizdateConfig) {
		date.DefaultCalendar = cal
		date.MaxBizdaySearch = maxSearch
		log.SetLevel(level)
		InstanceConfig = cfg
	}(date.DefaultCalendar, date.MaxBizdaySearch, log.GetLevel(), InstanceConfig)

	cfg, err := ParseConfig([]byte(yamlConfig))
	require.NoError(t, err)

	registry := calendar.NewRegistry(calendar.Bond, calendar.Stock)
	require.NoError(t, cfg.Apply(registry))
	assert.Equal(t, []string{"BOND", "DESK", "STOCK"}, registry.Names())
	assert.Equal(t, "DESK", date.DefaultCalendar)
	assert.Equal(t, 30, date.MaxBizdaySearch)
	assert.Equal(t, log.DEBUG, log.GetLevel())
	assert.Equal(t, "DESK", InstanceConfig.DefaultCalendar)

	desk, err := registry.Lookup("desk")
	require.NoError(t, err)
	assert.Equal(t, "America/Chicago", desk.Tz().String())

	// Columbus day from the bond rules, then the configured closures.
	from := date.MustNew(2020, 10, 9)
	next, err := from.NextBizdayIn(registry, "")
	require.NoError(t, err)
	assert.Equal(t, date.MustNew(2020, 10, 16), next)
}

// nolint:paralleltest // Apply changes package level settings
func TestApplyUnknownDefault(t *testing.T) {
	cfg, err := ParseConfig([]byte("default_calendar: lse\n"))
	require.NoError(t, err)
	err = cfg.Apply(calendar.NewRegistry(calendar.Bond))
	assert.True(t, errors.Is(err, calendar.ErrUnknownCalendar))
}

// nolint:paralleltest // Apply changes package level settings
func TestApplyFailureLeavesRegistryUntouched(t *testing.T) {
	defaultCalendar := date.DefaultCalendar
	cfg, err := ParseConfig([]byte("default_calendar: lse\ncalendars:\n  - name: desk\n    base: bond\n"))
	require.NoError(t, err)

	registry := calendar.NewRegistry(calendar.Bond, calendar.Stock)
	err = cfg.Apply(registry)
	assert.True(t, errors.Is(err, calendar.ErrUnknownCalendar))
	assert.Equal(t, []string{"BOND", "STOCK"}, registry.Names())
	assert.Equal(t, defaultCalendar, date.DefaultCalendar)

	cfg, err = ParseConfig([]byte("calendars:\n  - name: desk\n  - name: broken\n    base: lse\n"))
	require.NoError(t, err)
	err = cfg.Apply(registry)
	assert.True(t, errors.Is(err, calendar.ErrInvalidCalendar))
	assert.Equal(t, []string{"BOND", "STOCK"}, registry.Names())
}

// nolint:paralleltest // Apply changes package level settings
func TestApplyDefaultFromConfiguredCalendar(t *testing.T) {
	defer func(cal string, maxSearch int, level log.Level, cfg BizdateConfig) {
		date.DefaultCalendar = cal
		date.MaxBizdaySearch = maxSearch
		log.SetLevel(level)
		InstanceConfig = cfg
	}(date.DefaultCalendar, date.MaxBizdaySearch, log.GetLevel(), InstanceConfig)

	cfg, err := ParseConfig([]byte("default_calendar: desk\ncalendars:\n  - name: Desk\n"))
	require.NoError(t, err)

	registry := calendar.NewRegistry()
	require.NoError(t, cfg.Apply(registry))
	assert.Equal(t, []string{"DESK"}, registry.Names())
	assert.Equal(t, "DESK", date.DefaultCalendar)
}

func TestApplyInvalidCalendar(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig([]byte("calendars:\n  - name: desk\n    base: lse\n"))
	require.NoError(t, err)
	err = cfg.Apply(calendar.NewRegistry())
	assert.True(t, errors.Is(err, calendar.ErrInvalidCalendar))
}
