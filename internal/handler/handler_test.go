package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/developpeurInf/focus-academia-hub/internal/auth"
	"github.com/developpeurInf/focus-academia-hub/internal/model"
	"github.com/developpeurInf/focus-academia-hub/internal/store"
)

type testEnv struct {
	router *gin.Engine
	store  *store.Store
	auth   *auth.Service
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New()
	svc := auth.NewService(st, "focus-academia-hub", "test-signing-secret", 30*time.Minute)

	r := gin.New()
	New(st, svc).Register(r)
	return &testEnv{router: r, store: st, auth: svc}
}

// tokenFor issues a token for a seed user by email.
func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	user, err := e.store.UserByEmail(email)
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	token, err := e.auth.IssueToken(user)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("valid credentials", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/auth/login", "", `{"email":"admin@focus.edu","password":"adminpass"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200; body %s", w.Code, w.Body.String())
		}
		var resp struct {
			AccessToken string     `json:"access_token"`
			TokenType   string     `json:"token_type"`
			User        model.User `json:"user"`
		}
		decode(t, w, &resp)
		if resp.AccessToken == "" {
			t.Error("empty access_token")
		}
		if resp.TokenType != "bearer" {
			t.Errorf("token_type = %q, want bearer", resp.TokenType)
		}
		if resp.User.Role != model.RoleAdmin {
			t.Errorf("user.role = %q, want admin", resp.User.Role)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/auth/login", "", `{"email":"admin@focus.edu","password":"wrong"}`)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/auth/login", "", `{"email":"not-an-email","password":"x"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/dashboard/stats"},
		{http.MethodGet, "/api/dashboard/activity"},
		{http.MethodGet, "/api/students"},
		{http.MethodGet, "/api/teachers/1"},
		{http.MethodGet, "/api/classes"},
		{http.MethodDelete, "/api/classes/1"},
	}

	for _, tt := range paths {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if w := env.do(tt.method, tt.path, "", ""); w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}

	t.Run("expired token", func(t *testing.T) {
		token, err := auth.Issue("emma@focus.edu", "focus-academia-hub", "test-signing-secret", -time.Minute)
		if err != nil {
			t.Fatal(err)
		}
		if w := env.do(http.MethodGet, "/api/students", token, ""); w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t)
	token := env.tokenFor(t, "emma@focus.edu")

	t.Run("stats", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/dashboard/stats", token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var stats model.DashboardStats
		decode(t, w, &stats)
		if stats.TotalStudents != 320 || stats.TotalTeachers != 28 {
			t.Errorf("stats = %+v, want the fixed snapshot", stats)
		}
	})

	t.Run("activity with limit", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/dashboard/activity?limit=2", token, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var items []model.ActivityItem
		decode(t, w, &items)
		if len(items) != 2 {
			t.Errorf("returned %d items, want 2", len(items))
		}
	})

	t.Run("activity default limit", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/dashboard/activity", token, "")
		var items []model.ActivityItem
		decode(t, w, &items)
		if len(items) != 5 {
			t.Errorf("returned %d items, want 5", len(items))
		}
	})
}

func TestStudentEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.tokenFor(t, "admin@focus.edu")
	studentTok := env.tokenFor(t, "emma@focus.edu")

	t.Run("list with query", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/students?query=10th", studentTok, "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var students []model.Student
		decode(t, w, &students)
		if len(students) != 2 {
			t.Fatalf("returned %d students, want 2", len(students))
		}
	})

	t.Run("get unknown id", func(t *testing.T) {
		if w := env.do(http.MethodGet, "/api/students/nope", studentTok, ""); w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})

	t.Run("create forbidden for student role", func(t *testing.T) {
		body := `{"name":"X","email":"x@focus.edu","grade":"9th","status":"active","enrollmentDate":"2024-09-01"}`
		if w := env.do(http.MethodPost, "/api/students", studentTok, body); w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("create then update then delete", func(t *testing.T) {
		body := `{"name":"Lucas Reed","email":"lucas@focus.edu","grade":"9th","status":"active","enrollmentDate":"2024-09-01","attendance":90}`
		w := env.do(http.MethodPost, "/api/students", admin, body)
		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
		}
		var created model.Student
		decode(t, w, &created)
		if created.ID == "" {
			t.Fatal("created student has empty id")
		}

		w = env.do(http.MethodPut, "/api/students/"+created.ID, admin, `{"grade":"10th"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
		}
		var updated model.Student
		decode(t, w, &updated)
		if updated.Grade != "10th" {
			t.Errorf("grade = %q, want 10th", updated.Grade)
		}
		if updated.Attendance == nil || *updated.Attendance != 90 {
			t.Error("attendance not carried forward through the API")
		}

		// Delete is admin-only.
		if w := env.do(http.MethodDelete, "/api/students/"+created.ID, studentTok, ""); w.Code != http.StatusForbidden {
			t.Errorf("delete as student status = %d, want 403", w.Code)
		}
		w = env.do(http.MethodDelete, "/api/students/"+created.ID, admin, "")
		if w.Code != http.StatusOK {
			t.Fatalf("delete status = %d", w.Code)
		}
		var resp map[string]bool
		decode(t, w, &resp)
		if !resp["success"] {
			t.Error("delete response missing success:true")
		}
		if w := env.do(http.MethodDelete, "/api/students/"+created.ID, admin, ""); w.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", w.Code)
		}
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		body := `{"name":"X","email":"x@focus.edu","grade":"9th","status":"expelled","enrollmentDate":"2024-09-01"}`
		if w := env.do(http.MethodPost, "/api/students", admin, body); w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestTeacherEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.tokenFor(t, "admin@focus.edu")
	teacherTok := env.tokenFor(t, "john@focus.edu")

	t.Run("create admin-only", func(t *testing.T) {
		body := `{"name":"Alan Turing","email":"alan@focus.edu","subject":"Computer Science","joinDate":"2024-01-08"}`
		if w := env.do(http.MethodPost, "/api/teachers", teacherTok, body); w.Code != http.StatusForbidden {
			t.Errorf("create as teacher status = %d, want 403", w.Code)
		}

		w := env.do(http.MethodPost, "/api/teachers", admin, body)
		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
		}
		var created model.Teacher
		decode(t, w, &created)

		// The addition shows up at the head of the feed.
		w = env.do(http.MethodGet, "/api/dashboard/activity?limit=1", admin, "")
		var items []model.ActivityItem
		decode(t, w, &items)
		if len(items) != 1 || items[0].Target != created.Name || items[0].Type != "system" {
			t.Errorf("newest activity = %+v, want system entry for %s", items, created.Name)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		w := env.do(http.MethodPut, "/api/teachers/2", admin, `{"subject":"Drama"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("update status = %d", w.Code)
		}
		var updated model.Teacher
		decode(t, w, &updated)
		if updated.Subject != "Drama" || updated.Name != "Sarah Johnson" {
			t.Errorf("updated = %+v", updated)
		}

		if w := env.do(http.MethodDelete, "/api/teachers/2", teacherTok, ""); w.Code != http.StatusForbidden {
			t.Errorf("delete as teacher status = %d, want 403", w.Code)
		}
		if w := env.do(http.MethodDelete, "/api/teachers/2", admin, ""); w.Code != http.StatusOK {
			t.Errorf("delete status = %d, want 200", w.Code)
		}
		if w := env.do(http.MethodGet, "/api/teachers/2", admin, ""); w.Code != http.StatusNotFound {
			t.Errorf("get after delete status = %d, want 404", w.Code)
		}
	})

	t.Run("update unknown id", func(t *testing.T) {
		if w := env.do(http.MethodPut, "/api/teachers/nope", admin, `{"subject":"Drama"}`); w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", w.Code)
		}
	})
}

func TestClassEndpoints(t *testing.T) {
	env := newTestEnv(t)
	admin := env.tokenFor(t, "admin@focus.edu")
	teacherTok := env.tokenFor(t, "john@focus.edu")
	studentTok := env.tokenFor(t, "emma@focus.edu")

	t.Run("create forbidden for student and collection unchanged", func(t *testing.T) {
		body := `{"name":"Chemistry 101","subject":"Chemistry","teacherId":"3","teacherName":"Robert Chen","studentCount":18}`
		if w := env.do(http.MethodPost, "/api/classes", studentTok, body); w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
		if got := len(env.store.ListClasses("")); got != 5 {
			t.Errorf("classes length = %d, want 5", got)
		}
	})

	t.Run("teacher can create and update", func(t *testing.T) {
		body := `{"name":"Chemistry 101","subject":"Chemistry","teacherId":"3","teacherName":"Robert Chen","studentCount":18,"schedule":[{"day":"Monday","startTime":"08:00","endTime":"09:30","room":"E201"}]}`
		w := env.do(http.MethodPost, "/api/classes", teacherTok, body)
		if w.Code != http.StatusOK {
			t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
		}
		var created model.Class
		decode(t, w, &created)
		if len(created.Schedule) != 1 || created.Schedule[0].Room != "E201" {
			t.Errorf("schedule = %v", created.Schedule)
		}

		w = env.do(http.MethodPut, "/api/classes/"+created.ID, teacherTok, `{"studentCount":22}`)
		if w.Code != http.StatusOK {
			t.Fatalf("update status = %d", w.Code)
		}
		var updated model.Class
		decode(t, w, &updated)
		if updated.StudentCount != 22 || updated.Name != "Chemistry 101" {
			t.Errorf("updated = %+v", updated)
		}
	})

	t.Run("delete admin-only", func(t *testing.T) {
		if w := env.do(http.MethodDelete, "/api/classes/1", teacherTok, ""); w.Code != http.StatusForbidden {
			t.Errorf("delete as teacher status = %d, want 403", w.Code)
		}
		if w := env.do(http.MethodDelete, "/api/classes/1", admin, ""); w.Code != http.StatusOK {
			t.Errorf("delete status = %d, want 200", w.Code)
		}
		if w := env.do(http.MethodDelete, "/api/classes/1", admin, ""); w.Code != http.StatusNotFound {
			t.Errorf("second delete status = %d, want 404", w.Code)
		}
	})

	t.Run("list with query", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/classes?query=physics", studentTok, "")
		var classes []model.Class
		decode(t, w, &classes)
		if len(classes) != 1 || classes[0].Name != "Physics Fundamentals" {
			t.Errorf("classes = %v", classes)
		}
	})
}
