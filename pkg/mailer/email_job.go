package mailer

import (
	"fmt"

	"github.com/oksasatya/account-core/internal/domain/entity"
	mailtpl "github.com/oksasatya/account-core/pkg/mailer/templates"
)

// EmailJob is a rendered message ready to send.
type EmailJob struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// JobsFromEvent renders the notifications for an account event. A profile
// update that moved the sign-in email also notifies the previous address.
func JobsFromEvent(ev entity.AccountEvent, appName string) ([]EmailJob, error) {
	if ev.Email == "" {
		return nil, fmt.Errorf("event %s has no recipient", ev.ID)
	}

	var (
		name string
		data mailtpl.EmailData
	)
	switch ev.Type {
	case entity.EventAccountCreated:
		name = mailtpl.Welcome
		data = mailtpl.NewWelcomeData(appName, ev.Name, ev.Email, mailtpl.WithTime(ev.OccurredAt))
	case entity.EventProfileUpdated:
		name = mailtpl.ProfileUpdated
		data = mailtpl.NewProfileUpdatedData(appName, ev.Name, ev.Email, mailtpl.Changes{
			Name:          ev.Changed(entity.FieldName),
			Email:         ev.Changed(entity.FieldEmail),
			Password:      ev.Changed(entity.FieldPassword),
			PreviousName:  ev.PreviousName,
			PreviousEmail: ev.PreviousEmail,
		}, mailtpl.WithTime(ev.OccurredAt))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Type)
	}

	subject, text, html, err := mailtpl.Render(name, data)
	if err != nil {
		return nil, err
	}
	jobs := []EmailJob{{To: ev.Email, Subject: subject, Text: text, HTML: html}}
	if ev.PreviousEmail != "" && ev.PreviousEmail != ev.Email {
		jobs = append(jobs, EmailJob{To: ev.PreviousEmail, Subject: subject, Text: text, HTML: html})
	}
	return jobs, nil
}
