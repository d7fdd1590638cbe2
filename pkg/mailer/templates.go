package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var templates = map[string]*template.Template{
	TemplateWelcome: template.Must(template.New(TemplateWelcome).Parse(`
<p>Hi {{.Username}},</p>
<p>Welcome to FoundIt. You can now report lost and found items and let other
students reach you when there is a match.</p>
<p>— The FoundIt team</p>`)),
	TemplateItemRetrieved: template.Must(template.New(TemplateItemRetrieved).Parse(`
<p>Hi {{.Username}},</p>
<p>Your listing <strong>{{.Title}}</strong> has been closed as retrieved.
It will stay visible with a retrieved badge so others know the story ended
well.</p>
<p>— The FoundIt team</p>`)),
}

var subjects = map[string]string{
	TemplateWelcome:       "Welcome to FoundIt",
	TemplateItemRetrieved: "Your listing was marked as retrieved",
}

// Render returns the subject and HTML body for a known template name.
func Render(name string, data map[string]any) (subject, html string, err error) {
	tpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[name], buf.String(), nil
}
