package templates

import (
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		if t.IsZero() {
			return
		}
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04 MST")
	}
}

// Changes marks which profile fields an update touched.
type Changes struct {
	Name, Email, Password bool
	PreviousName          string
	PreviousEmail         string
}

func WithChanges(ch Changes) Option {
	return func(d *EmailData) {
		d.NameChanged = ch.Name
		d.EmailChanged = ch.Email
		d.PasswordChanged = ch.Password
		d.PreviousName = ch.PreviousName
		d.PreviousEmail = ch.PreviousEmail
	}
}

func NewBaseEmailData(appName, name, email string, opts ...Option) EmailData {
	d := EmailData{Name: name, Email: email, AppName: appName}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(appName, name, email string, opts ...Option) EmailData {
	return NewBaseEmailData(appName, name, email, opts...)
}

func NewProfileUpdatedData(appName, name, email string, ch Changes, opts ...Option) EmailData {
	opts = append([]Option{WithChanges(ch)}, opts...)
	return NewBaseEmailData(appName, name, email, opts...)
}
