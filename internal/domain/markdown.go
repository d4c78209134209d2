package domain

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// DateLabelLayout renders dates like "Friday, October 16, 2026".
const DateLabelLayout = "Monday, January 2, 2006"

// TasksURLEnv names the variable that supplies the link fragment's target.
const TasksURLEnv = "DAILY_TASKS_URL"

// RitualInputs are the computed values substituted into the page templates.
type RitualInputs struct {
	DateLabel string
	Moon      MoonInfo
	Weather   string
	Tarot     Card
	Lenormand Card
	TasksURL  string
}

// Fragments are the five markdown sections of a ritual page, in page order.
type Fragments struct {
	Intro    string
	Tasks    string
	Movement string
	Journal  string
	Link     string
}

// All returns the fragments in page order.
func (f Fragments) All() []string {
	return []string{f.Intro, f.Tasks, f.Movement, f.Journal, f.Link}
}

// FormatDateLabel renders t in loc using DateLabelLayout.
func FormatDateLabel(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(DateLabelLayout)
}

const keywordsTemplate = `{{ define "keywords" }}**Keywords**
{{- range . }}
- {{ trim . }}
{{- end }}{{ end }}`

const introTemplate = `**How to use this page:** read it top to bottom once, slowly. Set one intention, pick three tasks, move a little, write a little.
**Tip:** leave anything blank that doesn't serve you today.

## {{ .DateLabel }}

**Moon:** {{ .Moon.PhaseName }} ({{ .Moon.Illumination }}% illumination)

**Intention:**

### Tarot: {{ .Tarot.Name }}
{{ .Tarot.Paragraph }}

{{ template "keywords" .Tarot.Keywords }}

### Lenormand: {{ .Lenormand.Name }}
{{ .Lenormand.Paragraph }}

{{ template "keywords" .Lenormand.Keywords }}

### Weather
{{ .Weather }}`

// TaskSlots is the number of empty checkboxes on every page.
const TaskSlots = 3

const tasksTemplate = `## Today's Three Tasks
{{- range until .Slots }}
- [ ] {{ end }}`

const movementTemplate = `## Movement Log

| Walking | Wall Push-Ups | Dumbbells |
| --- | --- | --- |
|  |  |  |
|  |  |  |

_Note: minutes, reps or sets all count. Any movement is a win._`

const journalTemplate = `## Journal
What felt most alive in you today, and what would you like to carry into tomorrow?`

const linkTemplate = `## Daily Tasks
{{ if empty .TasksURL -}}
_No daily tasks link configured. Set the ` + "`{{ .Env }}`" + ` environment variable to add one._
{{- else -}}
[Open today's task list]({{ .TasksURL }})
{{- end }}`

// pageTemplates are parsed once; execution never mutates them.
var pageTemplates = template.Must(
	template.New("page").Funcs(sprig.TxtFuncMap()).Parse(keywordsTemplate),
)

func init() {
	for name, body := range map[string]string{
		"intro":    introTemplate,
		"tasks":    tasksTemplate,
		"movement": movementTemplate,
		"journal":  journalTemplate,
		"link":     linkTemplate,
	} {
		template.Must(pageTemplates.New(name).Parse(body))
	}
}

type tasksData struct {
	Slots int
}

// linkData feeds the link template.
type linkData struct {
	TasksURL string
	Env      string
}

// AssembleMarkdown renders the five page fragments. Each fragment is trimmed.
func AssembleMarkdown(in RitualInputs) (Fragments, error) {
	var (
		f   Fragments
		err error
	)

	if f.Intro, err = render("intro", in); err != nil {
		return Fragments{}, err
	}
	if f.Tasks, err = render("tasks", tasksData{Slots: TaskSlots}); err != nil {
		return Fragments{}, err
	}
	if f.Movement, err = render("movement", nil); err != nil {
		return Fragments{}, err
	}
	if f.Journal, err = render("journal", nil); err != nil {
		return Fragments{}, err
	}
	if f.Link, err = render("link", linkData{TasksURL: strings.TrimSpace(in.TasksURL), Env: TasksURLEnv}); err != nil {
		return Fragments{}, err
	}

	return f, nil
}

func render(name string, data any) (string, error) {
	var b strings.Builder
	if err := pageTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", fmt.Errorf("rendering %s fragment: %w", name, err)
	}

	return strings.TrimSpace(b.String()), nil
}
