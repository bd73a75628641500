// Package smtp delivers notification events as email over SMTP.
package smtp

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/snipvault/backend/pkg/notify"
)

const fromAddress = "Snippet Vault <noreply@snippetvault.dev>"

// Mailer renders notification events into email messages and sends them
// through an SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	appURL string
}

func NewMailer(host string, port int, user, pass, appURL string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		appURL: appURL,
	}
}

func (m *Mailer) Send(ctx context.Context, e notify.Event) error {
	subject, body := m.render(e)
	if subject == "" {
		return fmt.Errorf("unknown notification type %q", e.Type)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fromAddress)
	msg.SetHeader("To", e.Recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

func (m *Mailer) render(e notify.Event) (subject, body string) {
	switch e.Type {
	case notify.EventWelcome:
		return "Welcome to Snippet Vault",
			fmt.Sprintf(`<h1>Welcome, %s!</h1>
<p>Your Snippet Vault account is ready. Submit your first snippet and an
administrator will review it shortly.</p>
<p><a href="%s">Open Snippet Vault</a></p>`, e.Name, m.appURL)

	case notify.EventReset:
		link := fmt.Sprintf("%s/reset-password?token=%s", m.appURL, e.ResetToken)
		return "Reset Your Password - Snippet Vault",
			fmt.Sprintf(`<p>Hi %s,</p>
<p>A password reset was requested for your Snippet Vault account.
Click the link below to choose a new password:</p>
<p><a href="%s">Reset Your Password</a></p>
<p>This link expires in 1 hour. If you did not request a reset, no action is
required.</p>`, e.Name, link)

	case notify.EventApproved:
		link := fmt.Sprintf("%s/snippets/%s", m.appURL, e.SnippetID)
		return "Your snippet was approved - Snippet Vault",
			fmt.Sprintf(`<p>Hi %s,</p>
<p>Good news: your snippet <b>%s</b> was approved and is now public.</p>
<p><a href="%s">View your snippet</a></p>`, e.Name, e.SnippetTitle, link)

	case notify.EventRejected:
		reason := e.Reason
		if reason == "" {
			reason = "No reason was provided."
		}
		return "Your snippet was not approved - Snippet Vault",
			fmt.Sprintf(`<p>Hi %s,</p>
<p>Your snippet <b>%s</b> was not approved.</p>
<p>%s</p>
<p>You can edit and resubmit it at any time.</p>`, e.Name, e.SnippetTitle, reason)
	}
	return "", ""
}
