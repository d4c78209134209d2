package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf key so a failure names the YAML key
// or APP_ variable to fix.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(koanfName)

	return v
}()

func koanfName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
	if name == "" || name == "-" {
		return f.Name
	}

	return name
}

// fieldMessages renders a failed tag; %[1]s is the key, %[2]s the tag param.
var fieldMessages = map[string]string{
	"required":    "%[1]s is required",
	"required_if": "%[1]s is required when %[2]s",
	"min":         "%[1]s must be at least %[2]s",
	"max":         "%[1]s must be at most %[2]s",
	"oneof":       "%[1]s must be one of: %[2]s",
	"url":         "%[1]s must be a valid URL",
	"http_url":    "%[1]s must be an http or https URL",
	"timezone":    "%[1]s must be an IANA timezone name",
}

// Validate reports every invalid field at once. The service refuses to
// start on error.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, formatFieldError(fe))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func formatFieldError(fe validator.FieldError) string {
	key := formatFieldPath(fe.Namespace())

	if msg, ok := fieldMessages[fe.Tag()]; ok {
		return fmt.Sprintf(msg, key, fe.Param())
	}

	return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
}

// formatFieldPath drops the root type from a namespace such as
// "Config.ritual.container_id".
func formatFieldPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
