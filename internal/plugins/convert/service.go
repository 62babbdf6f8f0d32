package convert

import (
	"errors"
	"strings"

	"github.com/keyxmakerx/almanac/internal/apperror"
	"github.com/keyxmakerx/almanac/internal/calendars"
	"github.com/keyxmakerx/almanac/internal/engine"
)

// defaultLayout renders dates when a format request omits the layout.
const defaultLayout = "YYYY-MM-DD"

// ConvertService defines the business logic contract for calendar
// conversion.
type ConvertService interface {
	ListCalendars() []calendars.Descriptor
	GetCalendar(id calendars.ID) (*calendars.Descriptor, error)
	Today(id calendars.ID) (*TodayResponse, error)
	Convert(req ConvertRequest) (*ConvertResponse, error)
	Format(req FormatRequest) (*FormatResponse, error)
	Parse(req ParseRequest) (*ParseResponse, error)
}

// convertService implements ConvertService over the conversion engine.
type convertService struct {
	eng *engine.Engine
}

// NewConvertService creates a new conversion service.
func NewConvertService(eng *engine.Engine) ConvertService {
	return &convertService{eng: eng}
}

// ListCalendars returns the metadata of every registered calendar.
func (s *convertService) ListCalendars() []calendars.Descriptor {
	return s.eng.Descriptors()
}

// GetCalendar returns the metadata of one calendar.
func (s *convertService) GetCalendar(id calendars.ID) (*calendars.Descriptor, error) {
	cal, err := s.eng.Calendar(id)
	if err != nil {
		return nil, apperror.NewNotFound("unknown calendar: " + string(id))
	}
	desc := cal.Descriptor()
	return &desc, nil
}

// Today returns the current date in one calendar with its rendered form.
func (s *convertService) Today(id calendars.ID) (*TodayResponse, error) {
	d, err := s.eng.Today(id)
	if err != nil {
		return nil, apperror.NewNotFound("unknown calendar: " + string(id))
	}
	n, err := s.eng.ToDayCount(d)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	formatted, _ := s.eng.Format(d, defaultLayout)
	weekday, _ := s.eng.Weekday(d)
	return &TodayResponse{
		Date:      d,
		DayCount:  n,
		Weekday:   weekday,
		Formatted: formatted,
	}, nil
}

// Convert validates the source date and re-expresses it in every requested
// target calendar.
func (s *convertService) Convert(req ConvertRequest) (*ConvertResponse, error) {
	n, err := s.eng.ToDayCount(req.Date)
	if err != nil {
		return nil, mapEngineError(err)
	}

	targets := req.Targets
	if len(targets) == 0 {
		targets = s.eng.IDs()
	}

	results := make(map[calendars.ID]calendars.Date, len(targets))
	for _, target := range targets {
		d, err := s.eng.FromDayCount(n, target)
		if err != nil {
			return nil, mapEngineError(err)
		}
		results[target] = d
	}

	// Echo the source back through its own converter so the response
	// carries the normalized form (era filled in, components validated).
	source, err := s.eng.FromDayCount(n, req.Date.Calendar)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	weekday, _ := s.eng.Weekday(source)
	return &ConvertResponse{
		Source:   source,
		DayCount: n,
		Weekday:  weekday,
		Results:  results,
	}, nil
}

// Format renders a date against a token layout.
func (s *convertService) Format(req FormatRequest) (*FormatResponse, error) {
	if _, err := s.eng.ToDayCount(req.Date); err != nil {
		return nil, mapEngineError(err)
	}
	layout := req.Layout
	if strings.TrimSpace(layout) == "" {
		layout = defaultLayout
	}
	formatted, err := s.eng.Format(req.Date, layout)
	if err != nil {
		return nil, mapEngineError(err)
	}
	return &FormatResponse{Formatted: formatted}, nil
}

// Parse reads a canonical date string. With a calendar tag the text is read
// in that calendar only; without one it is probed against every calendar
// and all successful readings are returned.
func (s *convertService) Parse(req ParseRequest) (*ParseResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, apperror.NewBadRequest("text is required")
	}

	ids := s.eng.IDs()
	if req.Calendar != "" {
		ids = []calendars.ID{req.Calendar}
	}

	matches := []calendars.Date{}
	for _, id := range ids {
		d, err := s.eng.Parse(text, id)
		if err != nil {
			return nil, mapEngineError(err)
		}
		if d != nil {
			matches = append(matches, *d)
		}
	}
	return &ParseResponse{Matches: matches}, nil
}

// mapEngineError translates engine sentinel errors into client-facing
// AppErrors.
func mapEngineError(err error) error {
	switch {
	case errors.Is(err, calendars.ErrUnknownCalendar):
		return apperror.NewNotFound(err.Error())
	case errors.Is(err, calendars.ErrInvalidDate):
		return apperror.NewValidation(err.Error())
	default:
		return apperror.NewInternal(err)
	}
}
