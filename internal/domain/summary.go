package domain

import (
	"strings"
	"time"
)

// StatusOK marks a successful ritual run.
const StatusOK = "ok"

// PreviewSeparator joins fragments in the preview.
const PreviewSeparator = "\n\n---\n\n"

// PreviewLimit is the number of characters kept before the ellipsis.
const PreviewLimit = 300

const previewEllipsis = "..."

// Ritual is everything computed for one page before it is published.
type Ritual struct {
	CreatedAt time.Time
	Inputs    RitualInputs
	Fragments Fragments
}

// Summary is the JSON status returned to the caller after publishing.
type Summary struct {
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	Date          string    `json:"date"`
	Moon          MoonInfo  `json:"moon"`
	Weather       string    `json:"weather"`
	Tarot         Card      `json:"tarot"`
	Lenormand     Card      `json:"lenormand"`
	Preview       string    `json:"preview"`
	CraftResponse any       `json:"craftResponse"`
}

// NewSummary builds the caller-facing summary. response is the publisher's
// decoded JSON, or its raw text when the body was not JSON. CreatedAt is
// reported in UTC.
func NewSummary(r *Ritual, response any) *Summary {
	return &Summary{
		Status:        StatusOK,
		CreatedAt:     r.CreatedAt.UTC(),
		Date:          r.Inputs.DateLabel,
		Moon:          r.Inputs.Moon,
		Weather:       r.Inputs.Weather,
		Tarot:         r.Inputs.Tarot,
		Lenormand:     r.Inputs.Lenormand,
		Preview:       Preview(r.Fragments),
		CraftResponse: response,
	}
}

// Preview joins the fragments and keeps the first PreviewLimit characters,
// always followed by an ellipsis.
func Preview(f Fragments) string {
	runes := []rune(strings.Join(f.All(), PreviewSeparator))
	if len(runes) > PreviewLimit {
		runes = runes[:PreviewLimit]
	}

	return string(runes) + previewEllipsis
}
