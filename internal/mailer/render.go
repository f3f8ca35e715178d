package mailer

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/pathsdata/contact-backend/internal/model"
)

const (
	orgName    = "PATHSDATA"
	orgWebsite = "https://www.pathsdata.com"
)

// htmlBody is the fixed dark-themed notification template. User-supplied
// fields go through html/template, so markup in a submission arrives as
// inert text.
var htmlBody = template.Must(template.New("notification").Parse(`<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            background-color: #0a0f1c;
            padding: 20px;
            margin: 0;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            background: #1e293b;
            padding: 30px;
            border-radius: 12px;
            border: 1px solid #334155;
        }
        h2 {
            color: #ffffff;
            border-bottom: 3px solid #8b5cf6;
            padding-bottom: 12px;
            margin-top: 0;
        }
        .field-label {
            font-size: 12px;
            color: #8b5cf6;
            text-transform: uppercase;
            letter-spacing: 1px;
            margin-bottom: 4px;
        }
        .field-value {
            font-size: 16px;
            color: #ffffff;
            margin-bottom: 20px;
        }
        .field-value a {
            color: #a78bfa;
            text-decoration: none;
        }
        .interest-badge {
            display: inline-block;
            background: rgba(139, 92, 246, 0.2);
            color: #a78bfa;
            padding: 6px 12px;
            border-radius: 20px;
            font-size: 14px;
            border: 1px solid rgba(139, 92, 246, 0.3);
        }
        .message-box {
            background: #0f172a;
            border-left: 4px solid #8b5cf6;
            padding: 16px;
            border-radius: 0 8px 8px 0;
            color: #94a3b8;
            font-style: italic;
            line-height: 1.6;
        }
        .footer {
            margin-top: 30px;
            padding-top: 20px;
            border-top: 1px solid #334155;
            font-size: 12px;
            text-align: center;
            color: #64748b;
        }
        .footer a {
            color: #8b5cf6;
            text-decoration: none;
        }
    </style>
</head>
<body>
    <div class="container">
        <h2>🚀 New Contact Form Submission</h2>

        <div class="field-label">Name</div>
        <div class="field-value">{{.Name}}</div>

        <div class="field-label">Email</div>
        <div class="field-value"><a href="mailto:{{.Email}}">{{.Email}}</a></div>

        <div class="field-label">Company</div>
        <div class="field-value">{{.Company}}</div>

        <div class="field-label">Interest Area</div>
        <div class="field-value">
            <span class="interest-badge">{{.InterestLabel}}</span>
        </div>

        <div class="field-label">Message</div>
        <div class="message-box">{{.Message}}</div>

        <div class="footer">
            This notification was sent automatically by {{.OrgName}}.<br>
            <a href="{{.OrgWebsite}}">{{.OrgWebsite}}</a>
        </div>
    </div>
</body>
</html>`))

// Render produces the notification email for a submission. Rendering is pure:
// no I/O, no side effects.
func Render(sub *model.Submission) (Email, error) {
	subject := fmt.Sprintf("📩 New Contact Inquiry - %s", sub.Name)
	if sub.InterestLabel != model.InterestLabelNone {
		subject += fmt.Sprintf(" [%s]", sub.InterestLabel)
	}

	var html strings.Builder
	err := htmlBody.Execute(&html, struct {
		*model.Submission
		OrgName    string
		OrgWebsite string
	}{sub, orgName, orgWebsite})
	if err != nil {
		return Email{}, fmt.Errorf("rendering notification html: %w", err)
	}

	text := fmt.Sprintf(`NEW CONTACT FORM SUBMISSION
============================

Name: %s
Email: %s
Company: %s
Interest: %s

Message:
%s

--
%s
%s
`, sub.Name, sub.Email, sub.Company, sub.InterestLabel, sub.Message, orgName, orgWebsite)

	return Email{
		Subject:  subject,
		TextBody: text,
		HTMLBody: html.String(),
	}, nil
}
