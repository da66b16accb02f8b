// Package contact is the backend for the portfolio contact form:
// it validates submissions, persists them to flat files and lists them back.
package contact

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingField is returned when a submission lacks name, email or message
var ErrMissingField = errors.New("all fields are required")

// Submission is the form payload
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate requires every field to be non-blank
func (s Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Email) == "" || strings.TrimSpace(s.Message) == "" {
		return ErrMissingField
	}
	return nil
}

// Message is a stored submission
type Message struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	IP        string    `json:"ip"`
}

// textDateLayout renders the human-readable date in messages.txt
const textDateLayout = "1/2/2006, 3:04:05 PM"

// TextBlock renders the readable log entry appended to messages.txt
func (m Message) TextBlock() string {
	var b strings.Builder
	b.WriteString("\n=== NEW MESSAGE ===\n")
	b.WriteString("Date: " + m.Timestamp.Local().Format(textDateLayout) + "\n")
	b.WriteString("Name: " + m.Name + "\n")
	b.WriteString("Email: " + m.Email + "\n")
	b.WriteString("Message: " + m.Message + "\n")
	b.WriteString("==================\n")
	return b.String()
}
