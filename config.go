package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the options parsed from the command line.
type Config struct {
	// Size is the rangoli size from -n. SizeSet is false when the size has
	// to be read from stdin instead.
	Size    int
	SizeSet bool

	Format string `validate:"required,oneof=text txt ascii json"`
	Color  string `validate:"required,oneof=auto always never"`
	Output string `validate:"omitempty,filepath"`

	Validate    bool
	Interactive bool `validate:"excluded_with=Output"`
	Verbose     bool
}

var optionsValidator = validator.New()

// Check validates the option values.
func (c *Config) Check() error {
	err := optionsValidator.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := flagName(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("-%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("-%s must be one of: %s", field, strings.ReplaceAll(e.Param(), " ", ", ")))
		case "excluded_with":
			msgs = append(msgs, "-i cannot be combined with -o")
		default:
			msgs = append(msgs, fmt.Sprintf("-%s is invalid", field))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// flagName maps a Config field to the flag that sets it.
func flagName(field string) string {
	switch field {
	case "Output":
		return "o"
	case "Interactive":
		return "i"
	default:
		return strings.ToLower(field)
	}
}
