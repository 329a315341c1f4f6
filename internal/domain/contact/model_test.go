package contact_test

import (
	"errors"
	"strings"
	"testing"

	"clubadmin/internal/domain/contact"
)

// TestComposeReply verifies the reply letter quotes the original message.
func TestComposeReply(t *testing.T) {
	msg := contact.Message{ID: "c1", Username: "Rafi", Email: "rafi@example.com", Message: "How do I join?"}

	reply, err := contact.ComposeReply(msg, "Come to the club room on Sunday.")
	if err != nil {
		t.Fatalf("ComposeReply() error = %v", err)
	}
	if reply.To != "rafi@example.com" {
		t.Errorf("To = %q, want rafi@example.com", reply.To)
	}
	if reply.Subject != contact.ReplySubject {
		t.Errorf("Subject = %q", reply.Subject)
	}
	for _, want := range []string{"Dear Rafi,", `> "How do I join?"`, "Come to the club room on Sunday.", "RCSC Admin Team"} {
		if !strings.Contains(reply.Text, want) {
			t.Errorf("reply text missing %q", want)
		}
	}
}

// TestComposeReply_Rejects covers blank replies and missing recipients.
func TestComposeReply_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		msg      contact.Message
		response string
		wantErr  error
	}{
		{"blank reply", contact.Message{Email: "a@b.c"}, "   ", contact.ErrEmptyReply},
		{"no recipient", contact.Message{}, "hello", contact.ErrNoRecipient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := contact.ComposeReply(tt.msg, tt.response)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
