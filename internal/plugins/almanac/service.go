package almanac

import (
	"fmt"
	"time"

	"github.com/keyxmakerx/almanac/internal/apperror"
	"github.com/keyxmakerx/almanac/internal/astro"
	"github.com/keyxmakerx/almanac/internal/engine"
)

// The astronomical model is a truncated series; outside this window its
// error grows past the one-day accuracy the almanac promises.
const (
	minAlmanacYear = -4000
	maxAlmanacYear = 6000
)

// AlmanacService defines the business logic contract for astronomical
// queries.
type AlmanacService interface {
	SolarEvents(year int) (*EventsResponse, error)
	SolarTerms(year int) (*EventsResponse, error)
	MoonPhases(year int) (*EventsResponse, error)
	Moon(t time.Time) *MoonResponse
}

// almanacService implements AlmanacService over the conversion engine.
type almanacService struct {
	eng *engine.Engine
}

// NewAlmanacService creates a new almanac service.
func NewAlmanacService(eng *engine.Engine) AlmanacService {
	return &almanacService{eng: eng}
}

func validYear(year int) error {
	if year < minAlmanacYear || year > maxAlmanacYear {
		return apperror.NewValidation(fmt.Sprintf(
			"year must be between %d and %d", minAlmanacYear, maxAlmanacYear))
	}
	return nil
}

// SolarEvents returns the equinoxes and solstices of a Gregorian year.
func (s *almanacService) SolarEvents(year int) (*EventsResponse, error) {
	if err := validYear(year); err != nil {
		return nil, err
	}
	return eventsResponse(year, s.eng.SolarEvents(year)), nil
}

// SolarTerms returns the 24 solar-term boundaries of a Gregorian year.
func (s *almanacService) SolarTerms(year int) (*EventsResponse, error) {
	if err := validYear(year); err != nil {
		return nil, err
	}
	return eventsResponse(year, s.eng.SolarTerms(year)), nil
}

// MoonPhases returns the principal moon phases of a Gregorian year.
func (s *almanacService) MoonPhases(year int) (*EventsResponse, error) {
	if err := validYear(year); err != nil {
		return nil, err
	}
	return eventsResponse(year, s.eng.MoonPhases(year)), nil
}

// Moon describes the moon on the civil day of the given instant.
func (s *almanacService) Moon(t time.Time) *MoonResponse {
	return &MoonResponse{
		Date: t.UTC().Format("2006-01-02"),
		Moon: s.eng.Moon(t),
	}
}

func eventsResponse(year int, events []astro.Event) *EventsResponse {
	if events == nil {
		events = []astro.Event{}
	}
	return &EventsResponse{Year: year, Events: events, Total: len(events)}
}
