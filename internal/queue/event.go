// Package queue defines message payloads exchanged over the message broker.
package queue

// Intake event kinds.
const (
	IntakeKindContact     = "contact"
	IntakeKindApplication = "job_application"
)

// IntakeEvent is published whenever the public site accepts a contact-form
// submission or a job application.  It carries enough detail for downstream
// consumers to notify or log without querying the primary database.
type IntakeEvent struct {
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"` // company for contacts, job title for applications
	ReceivedAt string `json:"received_at"`
}
