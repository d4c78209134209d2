package domain

// Publishing is the destination of one ritual run. BaseURL and Token are
// required; TasksURL is optional.
type Publishing struct {
	BaseURL  string
	Token    string
	TasksURL string
}

// PublishResult is the destination's reply to a block insertion.
type PublishResult struct {
	Status int
	// Body is the decoded JSON reply, or the raw text when it was not JSON.
	Body any
}
