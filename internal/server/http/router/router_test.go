package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/elcriollo/restaurant/internal/server/http/handlers"
	testhelpers "github.com/elcriollo/restaurant/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.RestaurantFacadeStub{}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"name": "Maria", "email": "maria@elcriollo.do", "password": testhelpers.RandomASCIIString(12, 12)})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201 for register, got %d", resp.Code)
	}

	authed := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/api/tables", http.StatusOK},
		{http.MethodGet, "/api/tables/stats", http.StatusOK},
		{http.MethodGet, "/api/tables/1", http.StatusOK},
		{http.MethodGet, "/api/orders", http.StatusOK},
		{http.MethodGet, "/api/orders/stats", http.StatusOK},
		{http.MethodGet, "/api/orders/1", http.StatusOK},
		{http.MethodGet, "/api/orders/table/1", http.StatusOK},
		{http.MethodPost, "/api/orders/1/cancel", http.StatusOK},
		{http.MethodGet, "/api/products", http.StatusOK},
		{http.MethodGet, "/api/products/available", http.StatusOK},
		{http.MethodGet, "/api/products/category/Bebidas", http.StatusOK},
		{http.MethodGet, "/api/users", http.StatusOK},
		{http.MethodGet, "/api/users/1", http.StatusOK},
	}
	for _, route := range authed {
		req := httptest.NewRequest(route.method, route.path, nil)
		req.Header.Set("Authorization", "Bearer token")
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != route.status {
			t.Fatalf("%s %s: expected status %d, got %d", route.method, route.path, route.status, resp.Code)
		}
	}
}

func TestSetupRejectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(&testhelpers.RestaurantFacadeStub{}, logger)

	for _, path := range []string{"/api/tables", "/api/orders", "/api/products", "/api/users"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		engine.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status 401, got %d", path, resp.Code)
		}
	}
}

var _ handlers.RestaurantFacade = (*testhelpers.RestaurantFacadeStub)(nil)
