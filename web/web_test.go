package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Suneetha610/student/config"
	"github.com/Suneetha610/student/database"
	"github.com/Suneetha610/student/logger"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	os.Setenv("STUDENT_LOG_FOLDER", os.TempDir())
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func setupEngine(t *testing.T) *gin.Engine {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "web-test.db")
	if err := database.InitDB(dbPath); err != nil {
		t.Fatalf("init test db: %v", err)
	}
	t.Cleanup(func() {
		_ = database.CloseDB()
	})

	settings := &config.Settings{
		Web: config.WebSettings{ExternalURL: "http://localhost:8080"},
	}
	server := NewServer(settings)
	engine, err := server.initRouter()
	if err != nil {
		t.Fatalf("init router: %v", err)
	}
	return engine
}

func postForm(engine *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func get(engine *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// sessionCookies returns the final session cookie written by the response.
func sessionCookies(w *httptest.ResponseRecorder) []*http.Cookie {
	var last *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "student" && c.Value != "" && c.MaxAge >= 0 {
			last = c
		}
	}
	if last == nil {
		return nil
	}
	return []*http.Cookie{last}
}

func registerStudent(t *testing.T, engine *gin.Engine, rollNo, email, password string) {
	t.Helper()
	w := postForm(engine, "/", url.Values{
		"rollno":    {rollNo},
		"name":      {"Asha"},
		"branch":    {"CSE"},
		"year":      {"2"},
		"course":    {"B.Tech"},
		"email":     {email},
		"password1": {password},
		"password2": {password},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login/?registered=1", w.Header().Get("Location"))
}

func login(t *testing.T, engine *gin.Engine, rollNo, password string) []*http.Cookie {
	t.Helper()
	w := postForm(engine, "/login/", url.Values{
		"rollno":   {rollNo},
		"password": {password},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))
	cookies := sessionCookies(w)
	assert.NotEmpty(t, cookies)
	return cookies
}

func TestRegisterLoginFeedbackFlow(t *testing.T) {
	engine := setupEngine(t)

	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")
	cookies := login(t, engine, "21A01", "Secret123!")

	w := get(engine, "/dashboard/", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome")
	assert.Contains(t, w.Body.String(), "21A01")

	w = postForm(engine, "/feedback/", url.Values{
		"lecturer":      {"Dr. Rao"},
		"course":        {"DBMS"},
		"feedback_text": {"clear lectures"},
		"rating":        {"excellent"},
	}, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/thankyou/"))
}

func TestLoginFailureIsGeneric(t *testing.T) {
	engine := setupEngine(t)
	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")

	w := postForm(engine, "/login/", url.Values{
		"rollno":   {"21A01"},
		"password": {"wrong"},
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Roll Number or Password")
	assert.Empty(t, sessionCookies(w))
}

func TestDuplicateRegistrationRerendersForm(t *testing.T) {
	engine := setupEngine(t)
	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")

	w := postForm(engine, "/", url.Values{
		"rollno":    {"21A01"},
		"name":      {"Else"},
		"email":     {"other@x.com"},
		"password1": {"Other123!"},
		"password2": {"Other123!"},
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
	// the non-secret values are preserved
	assert.Contains(t, w.Body.String(), "other@x.com")
}

func TestDashboardRequiresLogin(t *testing.T) {
	engine := setupEngine(t)

	w := get(engine, "/dashboard/", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))

	w = get(engine, "/feedback/", nil)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	engine := setupEngine(t)
	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")
	cookies := login(t, engine, "21A01", "Secret123!")

	w := get(engine, "/logout/", cookies)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/login/", w.Header().Get("Location"))
}

func TestAdminRequiresStaff(t *testing.T) {
	engine := setupEngine(t)
	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")
	cookies := login(t, engine, "21A01", "Secret123!")

	w := get(engine, "/admin/students/", cookies)
	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/dashboard/", w.Header().Get("Location"))
}

func TestAdminListForStaff(t *testing.T) {
	engine := setupEngine(t)

	// the seeded staff account can reach the admin pages
	cookies := login(t, engine, "admin", "admin")

	w := get(engine, "/admin/students/", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Students")

	w = get(engine, "/admin/export/", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}

func TestChangePasswordForcesRelogin(t *testing.T) {
	engine := setupEngine(t)
	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")
	cookies := login(t, engine, "21A01", "Secret123!")

	w := postForm(engine, "/change-password/", url.Values{
		"old_password":     {"Secret123!"},
		"new_password":     {"Changed456!"},
		"confirm_password": {"Changed456!"},
	}, cookies)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/change-success/", w.Header().Get("Location"))

	// old password no longer works, the new one does
	w = postForm(engine, "/login/", url.Values{
		"rollno":   {"21A01"},
		"password": {"Secret123!"},
	}, nil)
	assert.Contains(t, w.Body.String(), "Invalid Roll Number or Password")

	login(t, engine, "21A01", "Changed456!")
}

func TestResetLinkFlow(t *testing.T) {
	engine := setupEngine(t)
	registerStudent(t, engine, "21A01", "a@x.com", "Secret123!")

	// unknown email gets the generic not-found message and no redirect
	w := postForm(engine, "/forgot-password/", url.Values{
		"email": {"nobody@x.com"},
	}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No account found")

	// known email lands on the link-sent page
	w = postForm(engine, "/forgot-password/", url.Values{
		"email": {"a@x.com"},
	}, nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/reset-success/", w.Header().Get("Location"))

	// a bogus link renders the invalid state, not the form
	w = get(engine, "/reset/AAAA/123-abc/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or has expired")
}
