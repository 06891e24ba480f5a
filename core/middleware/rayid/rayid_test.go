package rayid_test

import (
	"net/http/httptest"
	"testing"

	"s3-uploader/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(rayid.LocalsKey).(string))
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	resp, err := setupApp().Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.Header)
	_, parseErr := uuid.Parse(rid)
	assert.NoError(t, parseErr)
}

func TestRayID_Propagated(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(rayid.Header, "upstream-id")

	resp, err := setupApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-id", resp.Header.Get(rayid.Header))
}
