package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AllTemplates(t *testing.T) {
	for _, name := range []string{Welcome, ProfileUpdated} {
		t.Run(name, func(t *testing.T) {
			subject, text, html, err := Render(name, NewBaseEmailData("Accounts", "Ann", "ann@x.io"))
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.NotContains(t, subject, "\n")
			assert.Contains(t, text, "Ann")
			assert.Contains(t, html, "ann@x.io")
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", EmailData{})
	assert.Error(t, err)
}

func TestWithTime(t *testing.T) {
	d := NewWelcomeData("A", "n", "e", WithTime(time.Date(2025, 1, 2, 3, 4, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "02 January 2025, 02:04 UTC", d.Time)

	d = NewWelcomeData("A", "n", "e", WithTime(time.Time{}))
	assert.Empty(t, d.Time)
}

func TestDefaultFn(t *testing.T) {
	assert.Equal(t, "fb", defaultFn("fb", ""))
	assert.Equal(t, "fb", defaultFn("fb", nil))
	assert.Equal(t, "fb", defaultFn("fb", 0))
	assert.Equal(t, "x", defaultFn("fb", "x"))
	assert.Equal(t, 3, defaultFn("fb", 3))
}

func TestWelcomeSubjectFallback(t *testing.T) {
	subject, _, _, err := Render(Welcome, NewWelcomeData("", "Ann", "ann@x.io"))
	require.NoError(t, err)
	assert.Equal(t, "Welcome to your account", subject)
}

func TestProfileUpdated_RendersChanges(t *testing.T) {
	_, text, html, err := Render(ProfileUpdated, NewProfileUpdatedData("Accounts", "Ann", "ann@x.io", Changes{}))
	require.NoError(t, err)
	assert.Contains(t, text, "Sign-in email: ann@x.io")
	assert.NotContains(t, text, "changed")
	assert.NotContains(t, html, "changed")

	subject, text, html, err := Render(ProfileUpdated, NewProfileUpdatedData("Accounts", "Ann", "new@x.io", Changes{
		Email: true, Password: true, PreviousEmail: "old@x.io",
	}))
	require.NoError(t, err)
	assert.Equal(t, "Your Accounts sign-in email was changed", subject)
	assert.Contains(t, text, "Sign-in email changed from old@x.io to new@x.io.")
	assert.Contains(t, text, "Your password was changed.")
	assert.NotContains(t, text, "Name changed")
	assert.Contains(t, html, "<li>Your password was changed.</li>")
}
