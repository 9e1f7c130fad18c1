package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"stride/internal/db"

	"github.com/gofiber/fiber/v2"
)

const testSecret = "test-session-secret"

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "stride-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	handler, err := NewHandler(database, testSecret, time.UTC, false)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, handler
}

func jsonRequest(t *testing.T, method string, path string, payload any, sessionCookie string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	request := httptest.NewRequest(method, path, &body)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	if sessionCookie != "" {
		request.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionCookie})
	}
	return request
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, payload any, sessionCookie string) *http.Response {
	t.Helper()

	response, err := app.Test(jsonRequest(t, method, path, payload, sessionCookie), -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func sessionCookieValue(t *testing.T, response *http.Response) string {
	t.Helper()
	for _, cookie := range response.Cookies() {
		if cookie.Name == sessionCookieName {
			return cookie.Value
		}
	}
	t.Fatal("response carries no session cookie")
	return ""
}

// setupAccount runs the first-run flow and returns a valid session cookie.
func setupAccount(t *testing.T, app *fiber.App) string {
	t.Helper()

	response := doJSON(t, app, fiber.MethodPost, "/api/auth/setup", map[string]string{"password": "correct horse"}, "")
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("setup returned status %d", response.StatusCode)
	}
	return sessionCookieValue(t, response)
}

func createTestTask(t *testing.T, app *fiber.App, cookie string, payload map[string]any) uint {
	t.Helper()

	response := doJSON(t, app, fiber.MethodPost, "/api/tasks", payload, cookie)
	if response.StatusCode != fiber.StatusCreated {
		t.Fatalf("create task returned status %d", response.StatusCode)
	}
	body := decodeJSONBody(t, response)
	id, ok := body["id"].(float64)
	if !ok || id < 1 {
		t.Fatalf("create task response missing id: %v", body)
	}
	return uint(id)
}
