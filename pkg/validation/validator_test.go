package validation

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var s sample
	return c.ShouldBindJSON(&s)
}

func TestToDetails(t *testing.T) {
	Init()

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"email":`)))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"email": 5}`)))

	d := ToDetails(bind(t, `{"email":"nope","password":"123"}`))
	assert.Equal(t, "must be a valid email", d["email"])
	assert.Equal(t, "must be at least 6 characters and at most 72 bytes long", d["password"])

	d = ToDetails(bind(t, `{}`))
	assert.Equal(t, "is required", d["email"])
	assert.Equal(t, "is required", d["password"])

	assert.NoError(t, bind(t, `{"email":"a@x.com","password":"secret1"}`))
}

func TestPasswordAliasCountsBytes(t *testing.T) {
	Init()

	body := func(pwd string) string {
		raw, _ := json.Marshal(map[string]string{"email": "a@x.com", "password": pwd})
		return string(raw)
	}

	assert.NoError(t, bind(t, body(strings.Repeat("é", 36))))
	assert.NoError(t, bind(t, body(strings.Repeat("x", 72))))

	for _, pwd := range []string{strings.Repeat("é", 37), strings.Repeat("é", 40), strings.Repeat("x", 73)} {
		d := ToDetails(bind(t, body(pwd)))
		assert.Equal(t, "must be at least 6 characters and at most 72 bytes long", d["password"], "len %d", len(pwd))
	}
}
