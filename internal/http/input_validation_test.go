package handlers_test

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryInputValidation(t *testing.T) {
	env := newEnv(t, "http://127.0.0.1:1")
	tok := env.login(t, "admin@aradamart.com", "admin123")

	cases := []struct {
		name string
		path string
		body map[string]any
		msg  string
	}{
		{"blank sku", "/api/v1/admin/inventory", map[string]any{"sku": "   ", "name": "Lamp", "price": 1, "quantity": 1}, "sku is required"},
		{"missing name", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "price": 1, "quantity": 1}, "name is required"},
		{"missing price", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "name": "Lamp", "quantity": 1}, "price is required"},
		{"null price", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "name": "Lamp", "price": nil, "quantity": 1}, "price is required"},
		{"negative price", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "name": "Lamp", "price": -5, "quantity": 1}, "price must be a number not less than 0"},
		{"missing quantity", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "name": "Lamp", "price": 1}, "quantity is required"},
		{"negative quantity", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "name": "Lamp", "price": 1, "quantity": -1}, "quantity must be a number not less than 0"},
		{"non numeric price", "/api/v1/admin/inventory", map[string]any{"sku": "L1", "name": "Lamp", "price": "abc", "quantity": 1}, "invalid request body"},
		{"zero delta", "/api/v1/admin/inventory/1/adjust", map[string]any{"delta": 0}, "delta must not be 0"},
		{"bad id", "/api/v1/admin/inventory/a.b/adjust", map[string]any{"delta": 1}, "invalid id"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, "POST", tc.path, tc.body, tok)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			var out map[string]string
			decode(t, resp, &out)
			assert.Equal(t, tc.msg, out["error"])
		})
	}

	resp := env.do(t, "PUT", "/api/v1/admin/inventory/1", map[string]any{"sku": "SKU001", "name": "Laptop Pro", "quantity": 3}, tok)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out map[string]string
	decode(t, resp, &out)
	assert.Equal(t, "price is required", out["error"])
	rec, ok := env.stores.Inventory.Get("1")
	require.True(t, ok)
	assert.Equal(t, "999.99", rec.Price.StringFixed(2), "price not zeroed")

	assert.Equal(t, 2, env.stores.Inventory.Len())
	assert.Zero(t, env.stores.Activity.Len())
}

func TestUserInputValidation(t *testing.T) {
	env := newEnv(t, "http://127.0.0.1:1")
	tok := env.login(t, "admin@aradamart.com", "admin123")

	cases := []struct {
		name string
		body map[string]string
		msg  string
	}{
		{"bad email", map[string]string{"email": "x@y", "name": "X", "role": "user"}, "Please enter a valid email"},
		{"bad role", map[string]string{"email": "x@y.io", "name": "X", "role": "root"}, "role must be admin or user"},
		{"short password", map[string]string{"email": "x@y.io", "name": "X", "role": "user", "password": "12345", "confirmPassword": "12345"}, "Password must be at least 6 characters"},
		{"mismatch", map[string]string{"email": "x@y.io", "name": "X", "role": "user", "password": "123456", "confirmPassword": "654321"}, "Passwords do not match"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := env.do(t, "POST", "/api/v1/admin/users", tc.body, tok)
			require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			var out map[string]string
			decode(t, resp, &out)
			assert.Equal(t, tc.msg, out["error"])
		})
	}
}

func TestSearchInputValidation(t *testing.T) {
	env := newEnv(t, "http://127.0.0.1:1")

	resp := env.do(t, "POST", "/api/v1/products/query", map[string]string{"q": "<script>alert(1)</script>"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	long := strings.Repeat("a", 50) + "<script>alert(1)</script>"
	resp = env.do(t, "POST", "/api/v1/products/query", map[string]string{"q": long}, "")
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var out map[string]string
	decode(t, resp, &out)
	assert.Equal(t, "Enter a valid keyword (letters/numbers only)", out["error"])

	resp = env.do(t, "POST", "/api/v1/products/query", map[string]string{"q": strings.Repeat("b", 51)}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, "POST", "/api/v1/products/category", map[string]string{"category": "DROP TABLE"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, "GET", "/api/v1/products/abc", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, "POST", "/api/v1/favorites/-4/toggle", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
