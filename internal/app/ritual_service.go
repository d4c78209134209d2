// Package app contains application services that orchestrate use cases.
// Services depend on port interfaces and domain logic only.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/asteria-rituals/daily-ritual/internal/domain"
	"github.com/asteria-rituals/daily-ritual/internal/ports"
)

const operationDailyRitual = "daily_ritual"

// Publication results reported to the RitualRecorder.
const (
	ResultPublished     = "published"
	ResultMisconfigured = "misconfigured"
	ResultRejected      = "rejected"
	ResultTransport     = "transport_error"
	ResultFailed        = "failed"
)

// PublicationResults lists every result label in reporting order.
var PublicationResults = []string{
	ResultPublished, ResultMisconfigured, ResultRejected, ResultTransport, ResultFailed,
}

// errNoPublishResult is returned when the publisher reports success with
// nothing to show for it.
var errNoPublishResult = errors.New("publisher returned no result")

// RitualService builds the day's ritual page and publishes it.
type RitualService struct {
	weather     ports.WeatherProvider
	publisher   ports.BlockPublisher
	settings    ports.SettingsProvider
	recorder    ports.RitualRecorder
	executor    *Executor
	location    domain.Location
	timezone    *time.Location
	containerID string
	random      domain.IndexSource
	now         func() time.Time
	logger      *slog.Logger
}

// RitualServiceConfig contains the dependencies of the ritual service.
type RitualServiceConfig struct {
	Weather   ports.WeatherProvider
	Publisher ports.BlockPublisher
	Settings  ports.SettingsProvider

	// Recorder is optional.
	Recorder ports.RitualRecorder

	// Location is where the weather is read for.
	Location domain.Location

	// Timezone renders the date label. Defaults to UTC.
	Timezone *time.Location

	// ContainerID is the page the blocks are appended to.
	ContainerID string

	// Random draws the cards. Defaults to domain.ProcessRandom.
	Random domain.IndexSource

	// Now defaults to time.Now.
	Now func() time.Time

	Logger *slog.Logger
}

// NewRitualService creates a ritual service. It panics when a required
// port is missing.
func NewRitualService(cfg RitualServiceConfig) *RitualService {
	if cfg.Weather == nil || cfg.Publisher == nil || cfg.Settings == nil {
		panic("app: ritual service requires weather, publisher and settings ports")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "app.RitualService"))

	timezone := cfg.Timezone
	if timezone == nil {
		timezone = time.UTC
	}

	random := cfg.Random
	if random == nil {
		random = domain.ProcessRandom{}
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &RitualService{
		weather:     cfg.Weather,
		publisher:   cfg.Publisher,
		settings:    cfg.Settings,
		recorder:    cfg.Recorder,
		executor:    NewExecutor(logger),
		location:    cfg.Location,
		timezone:    timezone,
		containerID: cfg.ContainerID,
		random:      random,
		now:         now,
		logger:      logger,
	}
}

// ritualRun is the input threaded through the steps of one invocation.
type ritualRun struct {
	startedAt time.Time
	dest      domain.Publishing
}

// published is what Perform hands to Verify.
type published struct {
	ritual *domain.Ritual
	result *domain.PublishResult
}

// Run builds today's page, publishes it, and returns the summary.
//
// Missing publishing settings fail with *domain.ConfigurationError before
// any network call. Weather failures are absorbed into the fallback
// sentence. Publishing failures surface as *domain.UpstreamError or
// *domain.TransportError.
//
// Once started, a run ignores the caller's cancellation and deadline; only
// the outbound client timeouts bound it. Context values such as the request
// logger are kept.
func (s *RitualService) Run(ctx context.Context) (*domain.Summary, error) {
	ctx = context.WithoutCancel(ctx)

	op := Operation[ritualRun, published, published, *domain.Summary]{
		Name:     operationDailyRitual,
		Validate: s.validate,
		Perform:  s.perform,
		Verify:   verifyPublished,
		Respond: func(_ context.Context, _ ritualRun, p published) (*domain.Summary, error) {
			return domain.NewSummary(p.ritual, p.result.Body), nil
		},
	}

	summary, err := Execute(ctx, s.executor, op, ritualRun{startedAt: s.now()})
	s.record(classify(err))

	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "ritual published",
		slog.String("date", summary.Date),
		slog.String("moon", summary.Moon.PhaseName),
		slog.String("tarot", summary.Tarot.Name),
		slog.String("lenormand", summary.Lenormand.Name),
	)

	return summary, nil
}

func (s *RitualService) validate(ctx context.Context, run ritualRun) (ritualRun, error) {
	dest, err := s.settings.Publishing(ctx)
	if err != nil {
		return run, err
	}

	run.dest = dest

	return run, nil
}

func (s *RitualService) perform(ctx context.Context, run ritualRun) (published, error) {
	ritual, err := s.compose(ctx, run)
	if err != nil {
		return published{}, err
	}

	req := domain.BuildPublishRequest(ritual.Fragments, s.containerID)

	result, err := s.publisher.Publish(ctx, run.dest, req)
	if err != nil {
		return published{}, err
	}

	return published{ritual: ritual, result: result}, nil
}

// compose computes every input and renders the page. The weather fetch
// completes before any markdown is rendered.
func (s *RitualService) compose(ctx context.Context, run ritualRun) (*domain.Ritual, error) {
	inputs := domain.RitualInputs{
		DateLabel: domain.FormatDateLabel(run.startedAt, s.timezone),
		Moon:      domain.MoonAt(run.startedAt),
		Weather:   s.weatherSentence(ctx),
		Tarot:     domain.Tarot.Draw(s.random),
		Lenormand: domain.Lenormand.Draw(s.random),
		TasksURL:  run.dest.TasksURL,
	}

	fragments, err := domain.AssembleMarkdown(inputs)
	if err != nil {
		return nil, err
	}

	return &domain.Ritual{
		CreatedAt: run.startedAt.UTC(),
		Inputs:    inputs,
		Fragments: fragments,
	}, nil
}

// weatherSentence never fails; any error becomes the fallback sentence. An
// outage the provider reported is a warning, anything else an error.
func (s *RitualService) weatherSentence(ctx context.Context) string {
	current, err := s.weather.CurrentWeather(ctx, s.location)
	if err != nil {
		level := slog.LevelError
		if domain.IsUnavailable(err) {
			level = slog.LevelWarn
		}

		s.logger.Log(ctx, level, "weather unavailable, using fallback",
			slog.String("place", s.location.Name),
			slog.Any("error", err),
		)
		s.recordFallback()

		return domain.WeatherFallback
	}

	sentence := current.Summary(s.location.Name)
	if sentence == domain.WeatherFallback {
		s.recordFallback()
	}

	return sentence
}

func verifyPublished(_ context.Context, _ ritualRun, p published) (published, error) {
	if p.ritual == nil || p.result == nil {
		return published{}, errNoPublishResult
	}

	return p, nil
}

func (s *RitualService) record(result string) {
	if s.recorder != nil {
		s.recorder.Publication(result)
	}
}

func (s *RitualService) recordFallback() {
	if s.recorder != nil {
		s.recorder.WeatherFallback()
	}
}

// classify maps an invocation outcome to its publication result label.
func classify(err error) string {
	switch {
	case err == nil:
		return ResultPublished
	case domain.IsMisconfigured(err):
		return ResultMisconfigured
	case domain.IsUpstreamRejected(err):
		return ResultRejected
	case domain.IsTransport(err):
		return ResultTransport
	default:
		return ResultFailed
	}
}
