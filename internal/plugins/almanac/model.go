package almanac

import (
	"github.com/keyxmakerx/almanac/internal/astro"
	"github.com/keyxmakerx/almanac/internal/engine"
)

// EventsResponse lists almanac events of one Gregorian year.
type EventsResponse struct {
	Year   int           `json:"year"`
	Events []astro.Event `json:"events"`
	Total  int           `json:"total"`
}

// MoonResponse describes the moon on one civil day.
type MoonResponse struct {
	Date string            `json:"date"`
	Moon engine.MoonStatus `json:"moon"`
}
