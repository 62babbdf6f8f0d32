package convert

import "github.com/keyxmakerx/almanac/internal/calendars"

// ConvertRequest asks for one date to be re-expressed in other calendars.
// Targets lists the destination calendar tags; empty means all registered
// calendars.
type ConvertRequest struct {
	Date    calendars.Date `json:"date"`
	Targets []calendars.ID `json:"targets"`
}

// ConvertResponse carries the validated source date, its day number, and
// the converted dates keyed by calendar tag.
type ConvertResponse struct {
	Source   calendars.Date                  `json:"source"`
	DayCount int64                           `json:"day_count"`
	Weekday  int                             `json:"weekday"`
	Results  map[calendars.ID]calendars.Date `json:"results"`
}

// FormatRequest asks for a date rendered against a token layout.
type FormatRequest struct {
	Date   calendars.Date `json:"date"`
	Layout string         `json:"layout"`
}

// FormatResponse carries the rendered string.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// ParseRequest asks for a canonical date string to be read in one calendar,
// or probed against all calendars when Calendar is empty.
type ParseRequest struct {
	Text     string       `json:"text"`
	Calendar calendars.ID `json:"calendar"`
}

// ParseResponse lists every calendar in which the text parsed and
// validated.
type ParseResponse struct {
	Matches []calendars.Date `json:"matches"`
}

// TodayResponse is a calendar's current date with its rendered form.
type TodayResponse struct {
	Date      calendars.Date `json:"date"`
	DayCount  int64          `json:"day_count"`
	Weekday   int            `json:"weekday"`
	Formatted string         `json:"formatted"`
}
