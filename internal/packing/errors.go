package packing

import "errors"

var (
	// ErrInvalidDays is returned when the trip length is not a positive integer.
	ErrInvalidDays = errors.New("days must be a positive integer")
	// ErrInvalidTemperature is returned when the temperature is NaN or infinite.
	ErrInvalidTemperature = errors.New("temperature must be a finite number")
	// ErrInvalidRate is returned when a wear rate is not a positive finite number.
	ErrInvalidRate = errors.New("everyNDays must be a positive finite number")
	// ErrTooManyItems is returned when a single category would need more items
	// than the calculator will count.
	ErrTooManyItems = errors.New("too many items for one category")
	// ErrInvalidLaundry is returned when the laundry interval is present but not a positive finite number.
	ErrInvalidLaundry = errors.New("laundryEveryNDays must be a positive finite number")
	// ErrUnknownWeather is returned when parsing an unrecognised weather tag.
	ErrUnknownWeather = errors.New("unknown weather condition")
	// ErrUnknownCategory is returned when parsing an unrecognised clothing category.
	ErrUnknownCategory = errors.New("unknown clothing category")
)
