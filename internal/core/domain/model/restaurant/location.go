package restaurant

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

const hoursLayout = "15:04"

var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation constructor")

// Location is the document half of a restaurant, keyed by the restaurant id.
type Location struct {
	restaurantID kernel.UUID
	point        kernel.Location
	address      string
	openingHours string
	closingHours string
	workingDays  []time.Weekday
	guard        guard.ConstructorGuard
}

// LocationPatch carries the fields of a partial location update. Nil fields keep their value.
type LocationPatch struct {
	Point        *kernel.Location
	Address      *string
	OpeningHours *string
	ClosingHours *string
	WorkingDays  []time.Weekday
}

// NewLocation validates the document. Hours use "HH:MM"; closing before opening means
// the restaurant closes after midnight.
func NewLocation(
	restaurantID kernel.UUID,
	point kernel.Location,
	address, openingHours, closingHours string,
	workingDays []time.Weekday,
) (*Location, error) {
	loc := &Location{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		restaurantID.Validate(),
		point.Validate(),
		loc.setAddress(address),
		loc.setOpeningHours(openingHours),
		loc.setClosingHours(closingHours),
		loc.setWorkingDays(workingDays),
	); err != nil {
		return nil, err
	}

	loc.restaurantID = restaurantID
	loc.point = point
	return loc, nil
}

// NewLocationFromPatch builds a document from a patch that must carry every field.
func NewLocationFromPatch(restaurantID kernel.UUID, patch LocationPatch) (*Location, error) {
	var missing []error
	if patch.Point == nil {
		missing = append(missing, errs.NewValueIsRequiredError("location"))
	}
	if patch.Address == nil {
		missing = append(missing, errs.NewValueIsRequiredError("address"))
	}
	if patch.OpeningHours == nil {
		missing = append(missing, errs.NewValueIsRequiredError("openingHours"))
	}
	if patch.ClosingHours == nil {
		missing = append(missing, errs.NewValueIsRequiredError("closingHours"))
	}
	if len(patch.WorkingDays) == 0 {
		missing = append(missing, errs.NewValueIsRequiredError("workingDays"))
	}
	if err := errors.Join(missing...); err != nil {
		return nil, err
	}

	return NewLocation(restaurantID, *patch.Point, *patch.Address, *patch.OpeningHours, *patch.ClosingHours,
		patch.WorkingDays)
}

// Apply returns a new document with the patch applied on top of l.
func (l *Location) Apply(patch LocationPatch) (*Location, error) {
	point := l.point
	if patch.Point != nil {
		point = *patch.Point
	}
	address := l.address
	if patch.Address != nil {
		address = *patch.Address
	}
	opening := l.openingHours
	if patch.OpeningHours != nil {
		opening = *patch.OpeningHours
	}
	closing := l.closingHours
	if patch.ClosingHours != nil {
		closing = *patch.ClosingHours
	}
	days := l.workingDays
	if len(patch.WorkingDays) > 0 {
		days = patch.WorkingDays
	}

	return NewLocation(l.restaurantID, point, address, opening, closing, days)
}

// IsEmpty reports whether the patch changes nothing.
func (p LocationPatch) IsEmpty() bool {
	return p.Point == nil && p.Address == nil && p.OpeningHours == nil && p.ClosingHours == nil &&
		len(p.WorkingDays) == 0
}

func (l *Location) Validate() error {
	if l == nil {
		return ErrLocationIsNotConstructed
	}
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l *Location) RestaurantID() kernel.UUID {
	return l.restaurantID
}

func (l *Location) Point() kernel.Location {
	return l.point
}

func (l *Location) Address() string {
	return l.address
}

func (l *Location) OpeningHours() string {
	return l.openingHours
}

func (l *Location) ClosingHours() string {
	return l.closingHours
}

func (l *Location) WorkingDays() []time.Weekday {
	return slices.Clone(l.workingDays)
}

// IsOpenAt reports whether the restaurant is open at t (in t's location).
func (l *Location) IsOpenAt(t time.Time) bool {
	opening, _ := time.Parse(hoursLayout, l.openingHours)
	closing, _ := time.Parse(hoursLayout, l.closingHours)
	minute := t.Hour()*60 + t.Minute()
	from := opening.Hour()*60 + opening.Minute()
	to := closing.Hour()*60 + closing.Minute()

	day := t.Weekday()
	if to <= from && minute < to {
		// after midnight the shift belongs to the previous day
		day = (day + 6) % 7
		return slices.Contains(l.workingDays, day)
	}
	if !slices.Contains(l.workingDays, day) {
		return false
	}
	if to <= from {
		return minute >= from
	}
	return minute >= from && minute < to
}

// ParseWeekday accepts English day names ("Monday") case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return time.Sunday, errs.NewValueIsInvalidErrorWithCause("workingDays", fmt.Errorf("%q is not a weekday", name))
}

func (l *Location) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}

func (l *Location) setOpeningHours(hours string) error {
	if _, err := time.Parse(hoursLayout, hours); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("openingHours", fmt.Errorf("%q is not HH:MM", hours))
	}
	l.openingHours = hours
	return nil
}

func (l *Location) setClosingHours(hours string) error {
	if _, err := time.Parse(hoursLayout, hours); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("closingHours", fmt.Errorf("%q is not HH:MM", hours))
	}
	l.closingHours = hours
	return nil
}

func (l *Location) setWorkingDays(days []time.Weekday) error {
	if len(days) == 0 {
		return errs.NewValueIsRequiredError("workingDays")
	}

	unique := make([]time.Weekday, 0, len(days))
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			return errs.NewValueIsOutOfRangeError("workingDays", int(d), int(time.Sunday), int(time.Saturday))
		}
		if !slices.Contains(unique, d) {
			unique = append(unique, d)
		}
	}
	slices.Sort(unique)

	l.workingDays = unique
	return nil
}
