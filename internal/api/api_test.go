package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mohib75/study-syncer-server/internal/auth"
	"github.com/Mohib75/study-syncer-server/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

// testServer wires the real router to in-memory stores.
type testServer struct {
	cfg         *config.Config
	tokens      *auth.TokenManager
	assignments *memAssignments
	submissions *memSubmissions
	courses     *memCourses
	enrollments *memEnrollments
	payments    *fakePayments
	health      fakeHealth
	router      *gin.Engine
}

func newTestServer(t *testing.T, opts ...func(*testServer)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		cfg: &config.Config{
			AccessTokenSecret: testSecret,
			Environment:       "development",
			AllowedOrigins:    []string{"http://localhost:5173"},
		},
		tokens:      auth.NewTokenManager(testSecret),
		assignments: newMemAssignments(),
		submissions: &memSubmissions{},
		courses:     &memCourses{},
		enrollments: &memEnrollments{},
		payments:    &fakePayments{},
	}
	for _, opt := range opts {
		opt(ts)
	}

	ts.router = SetupRoutes(ts.cfg, ts.tokens, Stores{
		Assignments: ts.assignments,
		Submissions: ts.submissions,
		Courses:     ts.courses,
		Enrollments: ts.enrollments,
	}, ts.payments, ts.health)

	return ts
}

func production(ts *testServer) {
	ts.cfg.Environment = "production"
}

// do sends a JSON request, attaching cookies when given.
func (ts *testServer) do(t *testing.T, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// login obtains a session cookie through /jwt.
func (ts *testServer) login(t *testing.T, identity map[string]interface{}) *http.Cookie {
	t.Helper()
	rec := ts.do(t, http.MethodPost, "/jwt", identity)
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookie {
			return c
		}
	}
	t.Fatalf("login() returned no %s cookie", sessionCookie)
	return nil
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func trimmed(rec *httptest.ResponseRecorder) string {
	return strings.TrimSpace(rec.Body.String())
}
