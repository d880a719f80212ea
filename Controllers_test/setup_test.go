package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/router"
	"github.com/yeremiapane/cafe-pos/store"
)

// stubMailer records sends instead of talking to an SMTP server.
type stubMailer struct {
	sent []string
}

func (m *stubMailer) SendBill(to string, order models.Order, pdfBill []byte) error {
	m.sent = append(m.sent, to)
	return nil
}

// setupApp builds a router over a seeded temp-dir store.
func setupApp(t *testing.T) (*gin.Engine, *store.FileStore, *stubMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st, err := store.NewFileStore(t.TempDir())
	assert.NoError(t, err)
	assert.NoError(t, st.Seed())

	mailer := &stubMailer{}
	return router.SetupRouter(st, mailer), st, mailer
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return response
}

// loginAs returns a bearer token for one of the seeded users.
func loginAs(t *testing.T, r *gin.Engine, username, password string) string {
	t.Helper()

	w := doJSON(t, r, "POST", "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeBody(t, w)
	data := response["data"].(map[string]interface{})
	return data["token"].(string)
}
