package contact

import (
	"strings"
	"time"
)

// Inquiry is a message submitted through the contact form.
type Inquiry struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Phone   string `json:"phone" validate:"omitempty,max=30,phone"`
	Project string `json:"project" validate:"omitempty,project"`
	Subject string `json:"subject" validate:"required,max=150"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

// Normalize trims surrounding whitespace from every field.
func (in Inquiry) Normalize() Inquiry {
	return Inquiry{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Project: strings.TrimSpace(in.Project),
		Subject: strings.TrimSpace(in.Subject),
		Message: strings.TrimSpace(in.Message),
	}
}

// Receipt acknowledges an accepted inquiry.
type Receipt struct {
	Reference  string    `json:"reference"`
	ReceivedAt time.Time `json:"received_at"`
}
