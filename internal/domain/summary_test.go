package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	t.Run("short content keeps everything", func(t *testing.T) {
		got := Preview(sampleFragments())

		assert.Equal(t, "intro\n\n---\n\ntasks\n\n---\n\nmovement\n\n---\n\njournal\n\n---\n\nlink...", got)
	})

	t.Run("long content is cut at the limit", func(t *testing.T) {
		f := sampleFragments()
		f.Intro = strings.Repeat("a", 500)

		got := Preview(f)

		assert.Equal(t, strings.Repeat("a", PreviewLimit)+"...", got)
	})

	t.Run("cut counts characters not bytes", func(t *testing.T) {
		f := sampleFragments()
		f.Intro = strings.Repeat("°", 400)

		got := Preview(f)

		assert.Equal(t, PreviewLimit+3, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	})

	t.Run("real page stays within bound", func(t *testing.T) {
		f, err := AssembleMarkdown(sampleInputs())
		require.NoError(t, err)

		got := Preview(f)

		assert.LessOrEqual(t, utf8.RuneCountInString(got), PreviewLimit+3)
		assert.True(t, strings.HasPrefix(got, f.Intro[:40]))
		assert.True(t, strings.HasSuffix(got, "..."))
	})
}

func TestNewSummary(t *testing.T) {
	in := sampleInputs()
	created := time.Date(2026, time.October, 16, 13, 0, 0, 0, time.UTC)
	r := &Ritual{CreatedAt: created, Inputs: in, Fragments: sampleFragments()}
	resp := map[string]any{"items": []any{}}

	s := NewSummary(r, resp)

	assert.Equal(t, StatusOK, s.Status)
	assert.Equal(t, created, s.CreatedAt)
	assert.Equal(t, in.DateLabel, s.Date)
	assert.Equal(t, in.Moon, s.Moon)
	assert.Equal(t, in.Weather, s.Weather)
	assert.Equal(t, in.Tarot, s.Tarot)
	assert.Equal(t, in.Lenormand, s.Lenormand)
	assert.Equal(t, Preview(r.Fragments), s.Preview)
	assert.Equal(t, resp, s.CraftResponse)
}

func TestNewSummary_CreatedAtInUTC(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	created := time.Date(2026, time.October, 17, 2, 0, 0, 0, tokyo)

	s := NewSummary(&Ritual{CreatedAt: created, Inputs: sampleInputs(), Fragments: sampleFragments()}, nil)

	assert.Equal(t, time.UTC, s.CreatedAt.Location())
	assert.True(t, created.Equal(s.CreatedAt))

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"createdAt":"2026-10-16T17:00:00Z"`)
}
