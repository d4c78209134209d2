// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Ports take a context first and speak only in domain types; adapters
// translate wire formats and map failures to domain errors.
package ports

import (
	"context"

	"github.com/asteria-rituals/daily-ritual/internal/domain"
)

// WeatherProvider fetches current conditions for a location.
//
// Implementations return domain.ErrUnavailable (wrapped) on any failure. The
// caller decides whether a failure is fatal; the ritual absorbs it.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, loc domain.Location) (domain.CurrentWeather, error)
}

// BlockPublisher appends content blocks to a page in the notes service.
//
// A non-success status yields *domain.UpstreamError; a request that never
// completes yields *domain.TransportError.
type BlockPublisher interface {
	Publish(ctx context.Context, dest domain.Publishing, req domain.PublishRequest) (*domain.PublishResult, error)
}

// SettingsProvider reads the publishing destination at call time.
// Missing required values yield *domain.ConfigurationError.
type SettingsProvider interface {
	Publishing(ctx context.Context) (domain.Publishing, error)
}

// RitualRecorder counts ritual outcomes for operators.
type RitualRecorder interface {
	// Publication counts one invocation with its result label.
	Publication(result string)

	// WeatherFallback counts one use of the fallback weather sentence.
	WeatherFallback()
}
