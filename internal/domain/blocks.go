package domain

// BlockType is the content type tag of a block.
type BlockType string

// BlockTypeText is the only block type the ritual publishes.
const BlockTypeText BlockType = "text"

// Font is a block font family.
type Font string

// Fonts accepted by the destination API.
const (
	FontSystem  Font = "system"
	FontSerif   Font = "serif"
	FontMono    Font = "mono"
	FontRounded Font = "rounded"
)

// Alignment is a block text alignment.
type Alignment string

// Alignments accepted by the destination API.
const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// Layout is a block container layout.
type Layout string

// Layouts accepted by the destination API.
const (
	LayoutRegular Layout = "regular"
	LayoutCard    Layout = "card"
)

// ListStyle is the list rendering of a block.
type ListStyle string

// List styles accepted by the destination API.
const (
	ListStyleNone   ListStyle = "none"
	ListStyleBullet ListStyle = "bullet"
	ListStyleTask   ListStyle = "task"
)

// Decoration is a block decoration.
type Decoration string

// Decorations accepted by the destination API.
const (
	DecorationCallout Decoration = "callout"
	DecorationQuote   Decoration = "quote"
)

// ColorWhite is the fixed color of the tasks block.
const ColorWhite = "#FFFFFF"

// PositionEnd appends blocks after the existing content of the target.
const PositionEnd = "end"

// ContentBlock is one styled markdown block. Style fields are optional.
type ContentBlock struct {
	Type          BlockType    `json:"type"`
	Markdown      string       `json:"markdown"`
	Font          Font         `json:"font,omitempty"`
	TextAlignment Alignment    `json:"textAlignment,omitempty"`
	Layout        Layout       `json:"layout,omitempty"`
	ListStyle     ListStyle    `json:"listStyle,omitempty"`
	Decorations   []Decoration `json:"decorations,omitempty"`
	Color         string       `json:"color,omitempty"`
}

// Target names where blocks are inserted.
type Target struct {
	Position    string `json:"position"`
	ContainerID string `json:"pageId"`
}

// PublishRequest is the body of a block insertion call.
type PublishRequest struct {
	Blocks []ContentBlock `json:"blocks"`
	Target Target         `json:"position"`
}

// BuildPublishRequest lays the fragments out as five blocks appended to containerID.
func BuildPublishRequest(f Fragments, containerID string) PublishRequest {
	return PublishRequest{
		Blocks: []ContentBlock{
			{
				Type:     BlockTypeText,
				Markdown: f.Intro,
				Font:     FontSerif,
			},
			{
				Type:          BlockTypeText,
				Markdown:      f.Tasks,
				Layout:        LayoutCard,
				TextAlignment: AlignLeft,
				ListStyle:     ListStyleTask,
				Decorations:   []Decoration{DecorationCallout},
				Color:         ColorWhite,
			},
			{
				Type:     BlockTypeText,
				Markdown: f.Movement,
			},
			{
				Type:        BlockTypeText,
				Markdown:    f.Journal,
				Decorations: []Decoration{DecorationQuote},
			},
			{
				Type:     BlockTypeText,
				Markdown: f.Link,
			},
		},
		Target: Target{
			Position:    PositionEnd,
			ContainerID: containerID,
		},
	}
}
