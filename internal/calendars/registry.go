package calendars

import "fmt"

// Registry maps calendar identifiers to converter instances and performs
// any-to-any conversion by round-tripping through the day number. Stateless
// beyond the registration table built at construction; safe to share across
// the whole process.
type Registry struct {
	order []ID
	byID  map[ID]*Calendar
}

// NewRegistry builds a registry over the given converter systems,
// preserving registration order for listing.
func NewRegistry(systems ...System) *Registry {
	r := &Registry{byID: make(map[ID]*Calendar, len(systems))}
	for _, sys := range systems {
		cal := newCalendar(sys)
		r.order = append(r.order, cal.ID())
		r.byID[cal.ID()] = cal
	}
	return r
}

// Get returns the calendar for an identifier, or nil if unregistered.
func (r *Registry) Get(id ID) *Calendar {
	return r.byID[id]
}

// IDs returns all registered identifiers in registration order.
func (r *Registry) IDs() []ID {
	out := make([]ID, len(r.order))
	copy(out, r.order)
	return out
}

// Descriptors returns the descriptors of all registered calendars.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Descriptor())
	}
	return out
}

// Convert maps a date into the target calendar via the day number. Fails if
// either calendar identifier is unregistered or the date is invalid.
func (r *Registry) Convert(d Date, target ID) (Date, error) {
	src := r.Get(d.Calendar)
	if src == nil {
		return Date{}, fmt.Errorf("%w: %q", ErrUnknownCalendar, d.Calendar)
	}
	dst := r.Get(target)
	if dst == nil {
		return Date{}, fmt.Errorf("%w: %q", ErrUnknownCalendar, target)
	}

	n, err := src.ToDayCount(d)
	if err != nil {
		return Date{}, fmt.Errorf("convert from %s: %w", d.Calendar, err)
	}
	return dst.FromDayCount(n), nil
}
