package adminValidator_test

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminValidator "github.com/Sem485/eduforge-lms/validators/admin"
)

func postUser(t *testing.T, body string) int {
	t.Helper()

	app := fiber.New()
	app.Post("/user", adminValidator.CreateUser(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("POST", "/user", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateUserRejectsMalformedEmail(t *testing.T) {
	status := postUser(t, `{"username":"alice","email":"not-an-email","password":"supersecret"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCreateUserAcceptsValidEmail(t *testing.T) {
	status := postUser(t, `{"username":"alice","email":"alice@example.com","password":"supersecret"}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateUserEmailIsOptional(t *testing.T) {
	status := postUser(t, `{"username":"alice","password":"supersecret"}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateUserRejectsShortPassword(t *testing.T) {
	status := postUser(t, `{"username":"alice","password":"short"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	status := postUser(t, `{"username":"alice","password":"supersecret","role":"LEARNER"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
}
