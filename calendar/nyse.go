package calendar

// Session times are local to America/New_York; embed the zone database so
// the built-in calendars load on hosts without one.
import _ "time/tzdata"

// StockJSON describes the NYSE on top of the STOCK holiday rules: unscheduled
// closures and the 13:00 early closes.
const StockJSON = `{
	"base": "STOCK",
	"timezone": "America/New_York",
	"open_time": "09:30:00",
	"close_time": "16:00:00",
	"early_close_time": "13:00:00",
	"non_trading_days": [
		"2001-09-11", "2001-09-12", "2001-09-13", "2001-09-14",
		"2004-06-11",
		"2007-01-02",
		"2012-10-29", "2012-10-30",
		"2018-12-05",
		"2025-01-09"
	],
	"early_closes": [
		"2018-07-03", "2018-11-23", "2018-12-24",
		"2019-07-03", "2019-11-29", "2019-12-24",
		"2020-11-27", "2020-12-24",
		"2021-11-26",
		"2022-11-25",
		"2023-07-03", "2023-11-24",
		"2024-07-03", "2024-11-29", "2024-12-24",
		"2025-07-03", "2025-11-28", "2025-12-24",
		"2026-11-27", "2026-12-24"
	]
}`

// BondJSON describes the US government securities market on top of the BOND
// holiday rules.
const BondJSON = `{
	"base": "BOND",
	"timezone": "America/New_York",
	"open_time": "08:00:00",
	"close_time": "17:00:00",
	"early_close_time": "14:00:00",
	"non_trading_days": [
		"2001-09-11", "2001-09-12",
		"2004-06-11",
		"2012-10-30",
		"2018-12-05"
	],
	"early_closes": []
}`

// Bond implements the market calendar for US government securities.
var Bond = mustNew(BondName, BondJSON)

// Stock implements the market calendar for the NYSE.
var Stock = mustNew(StockName, StockJSON)
