package kernel

import (
	"fmt"

	"courierdesk/internal/pkg/errs"
)

// Dimensions is a value object for the physical size of a package in centimeters.
// All three sides must be positive. Dimensions is immutable after construction.
type Dimensions struct {
	length float64
	width  float64
	height float64
}

// NewDimensions creates Dimensions after validating that every side is positive.
func NewDimensions(length float64, width float64, height float64) (Dimensions, error) {
	for name, side := range map[string]float64{"length": length, "width": width, "height": height} {
		if side <= 0 {
			return Dimensions{}, errs.NewValueIsInvalidErrorWithCause(
				name,
				fmt.Errorf("%v is not greater than 0", side),
			)
		}
	}

	return Dimensions{length: length, width: width, height: height}, nil
}

// Length returns the package length in centimeters.
func (d Dimensions) Length() float64 {
	return d.length
}

// Width returns the package width in centimeters.
func (d Dimensions) Width() float64 {
	return d.width
}

// Height returns the package height in centimeters.
func (d Dimensions) Height() float64 {
	return d.height
}

// Volume returns the volume in cubic centimeters.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// Validate checks that the dimensions were created through NewDimensions.
func (d Dimensions) Validate() error {
	if d.length <= 0 || d.width <= 0 || d.height <= 0 {
		return errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")
	}
	return nil
}
