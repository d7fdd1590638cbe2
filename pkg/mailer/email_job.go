package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Text is the fallback body; when Template is set the worker renders it
// with Data and ignores Text/HTML.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome" or "item_retrieved"
	Data     map[string]any `json:"data,omitempty"`
}

const (
	TemplateWelcome       = "welcome"
	TemplateItemRetrieved = "item_retrieved"
)
