package entity

// ContactSubmission is a single contact-form submission. It lives only for
// the duration of one submit-and-respond cycle and is never persisted.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
