package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ReplySubject is the subject line used for every reply to a contact message.
const ReplySubject = "Response from RUET Cyber Security Club!"

// Domain errors
var (
	ErrEmptyReply  = errors.New("reply message cannot be empty")
	ErrNoRecipient = errors.New("contact message has no email address to reply to")
)

// Message is a message submitted through the public contact form.
type Message struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// Reply is the payload the backend mailer accepts for a contact reply.
type Reply struct {
	To       string `json:"to"`
	Username string `json:"username"`
	Subject  string `json:"subject"`
	Text     string `json:"text"`
}

// ComposeReply builds the reply letter for msg, quoting the original message.
// PRE: msg has an email address; response is non-blank
// POST: Returns a Reply addressed to msg.Email
func ComposeReply(msg Message, response string) (Reply, error) {
	if strings.TrimSpace(response) == "" {
		return Reply{}, ErrEmptyReply
	}
	if strings.TrimSpace(msg.Email) == "" {
		return Reply{}, ErrNoRecipient
	}

	body := fmt.Sprintf(`
Dear %s,

Thank you for reaching out to the RUET Cyber Security Club. We appreciate your interest and the time you took to contact us.

Your Message:
> "%s"

---
Our Response:
%s
---
If you have any further questions or need additional support, feel free to reply to this email. We're always happy to help.

Best regards,
RCSC Admin Team
RUET Cyber Security Club
`, msg.Username, msg.Message, response)

	return Reply{
		To:       msg.Email,
		Username: msg.Username,
		Subject:  ReplySubject,
		Text:     body,
	}, nil
}
