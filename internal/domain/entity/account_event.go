package entity

import "time"

const (
	EventAccountCreated = "account.created"
	EventProfileUpdated = "account.profile_updated"
)

// Fields reported in AccountEvent.Changes.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPassword = "password"
)

// AccountEvent is published after a successful account write.
// It never carries credentials.
type AccountEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`

	// set on profile updates only
	Changes       []string `json:"changes,omitempty"`
	PreviousName  string   `json:"previous_name,omitempty"`
	PreviousEmail string   `json:"previous_email,omitempty"`

	OccurredAt time.Time `json:"occurred_at"`
}

// Changed reports whether field is listed in Changes.
func (e AccountEvent) Changed(field string) bool {
	for _, f := range e.Changes {
		if f == field {
			return true
		}
	}
	return false
}

// ProfileChanges lists the fields that differ between before and after, in
// name, email, password order.
func ProfileChanges(before, after Profile, passwordChanged bool) []string {
	var changes []string
	if before.Name != after.Name {
		changes = append(changes, FieldName)
	}
	if before.Email != after.Email {
		changes = append(changes, FieldEmail)
	}
	if passwordChanged {
		changes = append(changes, FieldPassword)
	}
	return changes
}
