// file: internals/helpers/json_response_test.go
package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonErrorDefaultMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/kosong-404", func(c *fiber.Ctx) error { return JsonError(c, fiber.StatusNotFound, "") })
	app.Get("/kosong-0", func(c *fiber.Ctx) error { return JsonError(c, 0, "") })
	app.Get("/isi", func(c *fiber.Ctx) error { return JsonError(c, fiber.StatusBadRequest, "Payload tidak valid") })

	t.Run("pesan kosong 4xx → pakai teks status, bukan blank", func(t *testing.T) {
		code, body := doGet(t, app, "/kosong-404")
		assert.Equal(t, fiber.StatusNotFound, code)
		assert.Equal(t, "Not Found", body["message"])
		assert.Equal(t, "NOT_FOUND", body["error_code"])
	})

	t.Run("status 0 → 500 dengan teks status", func(t *testing.T) {
		code, body := doGet(t, app, "/kosong-0")
		assert.Equal(t, fiber.StatusInternalServerError, code)
		assert.Equal(t, "Internal Server Error", body["message"])
	})

	t.Run("pesan terisi tidak diubah", func(t *testing.T) {
		code, body := doGet(t, app, "/isi")
		assert.Equal(t, fiber.StatusBadRequest, code)
		assert.Equal(t, "Payload tidak valid", body["message"])
	})
}
