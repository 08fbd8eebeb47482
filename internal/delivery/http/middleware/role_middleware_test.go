package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hospital-management/internal/domain/entity"
)

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestRequireRoleAllowed(t *testing.T) {
	next, called := okHandler()
	handler := RequireRole(entity.RoleIDAdmin, entity.RoleIDDoctor)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if !*called {
		t.Error("next handler was not called")
	}
}

func TestRequireRoleForbidden(t *testing.T) {
	next, called := okHandler()
	handler := RequireRole(entity.RoleIDAdmin)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
	if *called {
		t.Error("next handler should not have been called")
	}
}

func TestRequireRoleMissingContext(t *testing.T) {
	next, called := okHandler()
	handler := RequireRole(entity.RoleIDAdmin)(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if *called {
		t.Error("next handler should not have been called")
	}
}

func TestRequirePatient(t *testing.T) {
	next, _ := okHandler()
	handler := RequirePatient(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDPatient))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for patient, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for doctor, got %d", rec.Code)
	}
}
