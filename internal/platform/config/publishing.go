package config

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/asteria-rituals/daily-ritual/internal/domain"
)

// Publishing environment variables.
const (
	EnvCraftBaseURL = "CRAFT_API_BASE_URL"
	EnvCraftToken   = "CRAFT_API_TOKEN"
	EnvTasksURL     = domain.TasksURLEnv
)

// publishingVars are read from the environment on every call.
var publishingVars = map[string]bool{
	EnvCraftBaseURL: true,
	EnvCraftToken:   true,
	EnvTasksURL:     true,
}

// Publishing holds the destination settings read at call time.
type Publishing struct {
	BaseURL  string `koanf:"craft_api_base_url" validate:"required,http_url"`
	Token    string `koanf:"craft_api_token"    validate:"required"`
	TasksURL string `koanf:"daily_tasks_url"`
}

// publishingValidate reports field errors under their environment names.
var publishingValidate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		return strings.ToUpper(name)
	})

	return v
}()

// LoadPublishing reads the publishing variables from the environment.
// Blank values count as missing. A *domain.ConfigurationError names every
// missing required variable and every set one that is unusable, such as a
// base URL without an http or https scheme.
func LoadPublishing() (*Publishing, error) {
	k := koanf.New(".")

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		value = strings.TrimSpace(value)
		if !publishingVars[key] || value == "" {
			return "", nil
		}

		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading publishing env vars: %w", err)
	}

	var p Publishing
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("unmarshalling publishing settings: %w", err)
	}

	if err := publishingValidate.Struct(&p); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}

		cfgErr := &domain.ConfigurationError{}
		for _, fe := range fieldErrs {
			if fe.Tag() == "required" {
				cfgErr.Missing = append(cfgErr.Missing, fe.Field())
			} else {
				cfgErr.Invalid = append(cfgErr.Invalid, fe.Field())
			}
		}

		return nil, cfgErr
	}

	return &p, nil
}

// PublishingSource loads publishing settings from the process environment.
// It doubles as a readiness check.
type PublishingSource struct{}

// Publishing implements ports.SettingsProvider.
func (PublishingSource) Publishing(_ context.Context) (domain.Publishing, error) {
	p, err := LoadPublishing()
	if err != nil {
		return domain.Publishing{}, err
	}

	return domain.Publishing{
		BaseURL:  p.BaseURL,
		Token:    p.Token,
		TasksURL: p.TasksURL,
	}, nil
}

// Name implements ports.HealthChecker.
func (PublishingSource) Name() string {
	return "publishing-settings"
}

// Check implements ports.HealthChecker.
func (s PublishingSource) Check(ctx context.Context) error {
	_, err := s.Publishing(ctx)
	return err
}
