package kernel

import (
	"errors"
	"fmt"
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created using NewLocation or
// NewGeocodedLocation to ensure validity.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewGeocodedLocation constructors")

// Location represents a named place: a mandatory free-text address plus the
// optionally resolved city, country and coordinates produced by geocoding.
//
// A Location with no resolved data is perfectly valid: geocoding returning no
// result is tolerated throughout the system, and such locations simply carry
// the raw text. Location is an immutable value object; the zero value is
// invalid and fails validation.
//
// Example:
//
//	loc, err := kernel.NewLocation("Rod. X km 200")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(loc.IsResolved()) // false
type Location struct { //nolint:recvcheck //using for validation
	text    string
	city    string
	country string
	lat     *float64
	lng     *float64

	guard guard.ConstructorGuard
}

// NewLocation creates an unresolved Location from a free-text address.
// The text must not be blank.
func NewLocation(text string) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := loc.setText(text); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewGeocodedLocation creates a Location carrying resolved geocoding data.
// City and country may be empty, and lat/lng may be nil, when the resolver
// could not determine them; when both coordinates are present they must be
// valid decimal degrees. Passing only one of lat/lng is invalid.
func NewGeocodedLocation(text, city, country string, lat, lng *float64) (Location, error) {
	loc := Location{
		city:    city,
		country: country,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setText(text),
		loc.setCoordinates(lat, lng),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks if the Location was properly constructed using a constructor.
// The zero value of Location is invalid and will fail this validation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Text returns the free-text address the location was created from.
func (l Location) Text() string {
	return l.text
}

// City returns the resolved city, or "" when geocoding did not determine one.
func (l Location) City() string {
	return l.city
}

// Country returns the resolved country, or "" when geocoding did not determine one.
func (l Location) Country() string {
	return l.country
}

// Coordinates returns the resolved latitude and longitude. ok is false when
// the location was never resolved to coordinates.
func (l Location) Coordinates() (lat, lng float64, ok bool) {
	if l.lat == nil || l.lng == nil {
		return 0, 0, false
	}
	return *l.lat, *l.lng, true
}

// IsResolved reports whether geocoding produced coordinates for this location.
func (l Location) IsResolved() bool {
	_, _, ok := l.Coordinates()
	return ok
}

// String returns a human-readable representation, useful for logging.
func (l Location) String() string {
	if lat, lng, ok := l.Coordinates(); ok {
		return fmt.Sprintf("Location(%s @ %f,%f)", l.text, lat, lng)
	}
	return fmt.Sprintf("Location(%s)", l.text)
}

// IsEqual compares two locations. Locations are equal when their text, city,
// country and coordinates all match. Both must be properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	if l.text != other.text || l.city != other.city || l.country != other.country {
		return false, nil
	}

	lat1, lng1, ok1 := l.Coordinates()
	lat2, lng2, ok2 := other.Coordinates()
	return ok1 == ok2 && lat1 == lat2 && lng1 == lng2, nil
}

func (l *Location) setText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewValueIsRequiredError("location text")
	}

	l.text = text
	return nil
}

func (l *Location) setCoordinates(lat, lng *float64) error {
	if lat == nil && lng == nil {
		return nil
	}

	if lat == nil || lng == nil {
		return errs.NewValueIsInvalidError("coordinates must carry both lat and lng")
	}

	if *lat < LatitudeMin || *lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("lat", *lat, LatitudeMin, LatitudeMax)
	}
	if *lng < LongitudeMin || *lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("lng", *lng, LongitudeMin, LongitudeMax)
	}

	latCopy, lngCopy := *lat, *lng
	l.lat, l.lng = &latCopy, &lngCopy
	return nil
}
