package config

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asteria-rituals/daily-ritual/internal/domain"
)

func TestLoadPublishing(t *testing.T) {
	t.Run("all set", func(t *testing.T) {
		t.Setenv(EnvCraftBaseURL, "https://craft.example.com/api")
		t.Setenv(EnvCraftToken, "secret")
		t.Setenv(EnvTasksURL, " https://tasks.example.com ")

		p, err := LoadPublishing()
		require.NoError(t, err)

		assert.Equal(t, "https://craft.example.com/api", p.BaseURL)
		assert.Equal(t, "secret", p.Token)
		assert.Equal(t, "https://tasks.example.com", p.TasksURL)
	})

	t.Run("tasks url optional", func(t *testing.T) {
		t.Setenv(EnvCraftBaseURL, "https://craft.example.com/api")
		t.Setenv(EnvCraftToken, "secret")
		t.Setenv(EnvTasksURL, "")

		p, err := LoadPublishing()
		require.NoError(t, err)
		assert.Empty(t, p.TasksURL)
	})

	t.Run("base url missing", func(t *testing.T) {
		t.Setenv(EnvCraftBaseURL, "")
		t.Setenv(EnvCraftToken, "secret")

		_, err := LoadPublishing()
		require.Error(t, err)

		var cfgErr *domain.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, []string{EnvCraftBaseURL}, cfgErr.Missing)
		assert.True(t, domain.IsMisconfigured(err))
	})

	t.Run("blank counts as missing", func(t *testing.T) {
		t.Setenv(EnvCraftBaseURL, "   ")
		t.Setenv(EnvCraftToken, "")

		_, err := LoadPublishing()
		require.Error(t, err)
		assert.Equal(t,
			"Missing required environment variables: CRAFT_API_BASE_URL, CRAFT_API_TOKEN",
			err.Error(),
		)
	})

	for _, raw := range []string{"craft", "connect.craft.do/api/v1", "ftp://craft.example.com"} {
		t.Run("base url "+raw+" is invalid", func(t *testing.T) {
			t.Setenv(EnvCraftBaseURL, raw)
			t.Setenv(EnvCraftToken, "secret")

			_, err := LoadPublishing()
			require.Error(t, err)
			assert.True(t, domain.IsMisconfigured(err))

			var cfgErr *domain.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Empty(t, cfgErr.Missing)
			assert.Equal(t, []string{EnvCraftBaseURL}, cfgErr.Invalid)
			assert.Equal(t, "Invalid environment variables: CRAFT_API_BASE_URL", err.Error())
		})
	}

	t.Run("invalid and missing reported together", func(t *testing.T) {
		t.Setenv(EnvCraftBaseURL, "craft")
		t.Setenv(EnvCraftToken, "")

		_, err := LoadPublishing()

		var cfgErr *domain.ConfigurationError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, []string{EnvCraftToken}, cfgErr.Missing)
		assert.Equal(t, []string{EnvCraftBaseURL}, cfgErr.Invalid)
	})
}

func TestPublishingSource(t *testing.T) {
	src := PublishingSource{}
	assert.Equal(t, "publishing-settings", src.Name())

	t.Setenv(EnvCraftBaseURL, "https://craft.example.com/api")
	t.Setenv(EnvCraftToken, "secret")
	t.Setenv(EnvTasksURL, "")

	p, err := src.Publishing(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Publishing{BaseURL: "https://craft.example.com/api", Token: "secret"}, p)
	assert.NoError(t, src.Check(context.Background()))

	t.Setenv(EnvCraftToken, "")
	assert.True(t, domain.IsMisconfigured(src.Check(context.Background())))
}
