package mail

import (
	"strings"
	"text/template"
	"time"
)

// ResetEmailSubject is the subject line of password-reset messages.
const ResetEmailSubject = "Password Reset"

// resetEmailTemplate is executed with ResetEmailParams.
var resetEmailTemplate = template.Must(template.New("reset").Parse(
	`You requested a password reset. Click the link below to reset your password:
{{.ResetLink}}

The link is valid for {{printf "%.f" .ExpiresIn.Minutes}} minutes.

If you did not request a password reset, you can ignore this email.
`))

// ResetEmailParams is the data for the reset email body.
type ResetEmailParams struct {
	ResetLink string
	ExpiresIn time.Duration
}

// RenderResetEmail produces the body of a password-reset message.
func RenderResetEmail(params ResetEmailParams) (string, error) {
	var b strings.Builder
	if err := resetEmailTemplate.Execute(&b, params); err != nil {
		return "", err
	}
	return b.String(), nil
}
