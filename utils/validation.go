package utils

import (
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed options
func ValidateOneOf(value string, allowed []string, fieldName string) error {
	if !slices.Contains(allowed, value) {
		return NewValidationError(fmt.Sprintf("%s must be one of [%s]", fieldName, strings.Join(allowed, ", ")))
	}
	return nil
}

// ValidateAmount checks that an amount is finite and below MaxAmount in magnitude
func ValidateAmount(value float64, fieldName string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) >= MaxAmount {
		return NewValidationError(fmt.Sprintf("%s must be a finite amount below %.0f", fieldName, MaxAmount))
	}
	return nil
}

// ValidateGSTRate checks that rate is one of the GST slabs
func ValidateGSTRate(rate float64) error {
	if !slices.Contains(GSTRates, rate) {
		return NewValidationError(fmt.Sprintf("gstRate %.2f is not a GST slab", rate))
	}
	return nil
}

// ValidateMobile checks an optional mobile number
func ValidateMobile(mobile string) error {
	if mobile == "" || IsValidMobile(mobile) {
		return nil
	}
	return NewValidationError("partyMobile must be a 10 digit mobile number starting with 6-9")
}

// ValidateRatio checks that a milling ratio is a fraction in (0, 1]
func ValidateRatio(ratio float64, fieldName string) error {
	if ratio <= 0 || ratio > 1 {
		return NewValidationError(fmt.Sprintf("%s must be between 0 and 1", fieldName))
	}
	return nil
}

// RegisterValidators adds the mill-specific binding tags to a validator engine
// and reports fields by their JSON names
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("mobile_in", func(fl validator.FieldLevel) bool {
		mobile := fl.Field().String()
		return mobile == "" || IsValidMobile(mobile)
	}); err != nil {
		return fmt.Errorf("failed to register mobile_in: %w", err)
	}

	if err := v.RegisterValidation("gst_rate", func(fl validator.FieldLevel) bool {
		return slices.Contains(GSTRates, fl.Field().Float())
	}); err != nil {
		return fmt.Errorf("failed to register gst_rate: %w", err)
	}
	return nil
}
