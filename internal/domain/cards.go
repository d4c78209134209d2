package domain

import (
	"math/rand/v2"
	"slices"
)

// Card is a divination card with its reading.
type Card struct {
	Name      string   `json:"name"`
	Paragraph string   `json:"paragraph"`
	Keywords  []string `json:"keywords"`
}

// IndexSource draws a uniform index in [0,n). *math/rand/v2.Rand satisfies it.
type IndexSource interface {
	IntN(n int) int
}

// ProcessRandom draws from the process-seeded math/rand/v2 generator,
// which is safe for concurrent use.
type ProcessRandom struct{}

// IntN implements IndexSource.
func (ProcessRandom) IntN(n int) int {
	return rand.IntN(n)
}

// Deck is a read-only card catalog.
type Deck struct {
	name  string
	cards []Card
}

// Name returns the catalog name.
func (d Deck) Name() string {
	return d.name
}

// Len returns the number of cards in the catalog.
func (d Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the catalog in table order.
func (d Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	for i, c := range d.cards {
		out[i] = c.clone()
	}

	return out
}

// Draw picks one card uniformly at random. The returned card shares no
// memory with the catalog.
func (d Deck) Draw(src IndexSource) Card {
	return d.cards[src.IntN(len(d.cards))].clone()
}

func (c Card) clone() Card {
	c.Keywords = slices.Clone(c.Keywords)
	return c
}

// Tarot is the tarot catalog.
var Tarot = Deck{
	name: "tarot",
	cards: []Card{
		{
			Name: "The Star",
			Paragraph: "After the storm comes a quiet sky. The Star asks you to trust that " +
				"healing is already underway and to pour your energy where it can renew you.",
			Keywords: []string{"hope", "renewal", "serenity"},
		},
		{
			Name: "The Empress",
			Paragraph: "Abundance grows from patient tending. The Empress invites you to " +
				"nourish your body, your home and the projects that feed you back.",
			Keywords: []string{"nurture", "abundance", "creativity"},
		},
		{
			Name: "Temperance",
			Paragraph: "Blend, don't force. Temperance reminds you that balance is a practice " +
				"of small adjustments made with patience across the whole day.",
			Keywords: []string{"balance", "moderation", "patience"},
		},
	},
}

// Lenormand is the Lenormand catalog.
var Lenormand = Deck{
	name: "lenormand",
	cards: []Card{
		{
			Name: "Clover",
			Paragraph: "A small stroke of luck is close at hand. Clover favors quick chances " +
				"and light-hearted risks, so say yes to the little opening today.",
			Keywords: []string{"luck", "opportunity", "lightness"},
		},
		{
			Name: "Sun",
			Paragraph: "Warmth and success shine on your efforts. The Sun brings clarity and " +
				"energy, making this a good day to be seen and to finish what you started.",
			Keywords: []string{"success", "vitality", "clarity"},
		},
		{
			Name: "Key",
			Paragraph: "The answer is already in your hand. Key points to solutions, " +
				"certainty and doors that open once you decide to walk through them.",
			Keywords: []string{"solution", "certainty", "importance"},
		},
	},
}
