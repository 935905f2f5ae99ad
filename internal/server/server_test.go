package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"lab-notebook-be/internal/bootstrap"
	"lab-notebook-be/internal/config"
	"lab-notebook-be/internal/dto"
	"lab-notebook-be/internal/pkg/logger"
	"lab-notebook-be/internal/testutil"
	"lab-notebook-be/pkg/blobstore"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *blobstore.MemoryStore) {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			CorsAllowedOrigins: "http://localhost:8001",
			BodyLimitMB:        10,
			StaticDir:          t.TempDir(),
		},
		Telemetry: config.TelemetryConfig{MetricsEnabled: true},
	}
	store := blobstore.NewMemory()
	container := bootstrap.NewContainer(testutil.NewTestDB(t), logger.NewNopLogger(), store)
	return New(cfg, container).GetApp(), store
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func multipartUpload(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/upload-reaction-image", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestNotebookEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/notebooks", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, "[]", string(raw))

	resp = doJSON(t, app, "POST", "/notebooks", map[string]string{"name": "Kinetics"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	created := decode[dto.NotebookResponse](t, resp)
	assert.Equal(t, "Kinetics", created.Name)

	resp = doJSON(t, app, "POST", "/notebooks", map[string]string{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "name is required", decode[map[string]string](t, resp)["detail"])

	resp = doJSON(t, app, "DELETE", "/notebooks/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/notebooks/%d", created.Id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.OkResponse](t, resp).Ok)

	resp = doJSON(t, app, "GET", "/notebooks", nil)
	assert.Empty(t, decode[[]dto.NotebookResponse](t, resp))
}

func TestExperimentEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/notebooks", map[string]string{"name": "Synthesis"})
	notebook := decode[dto.NotebookResponse](t, resp)

	resp = doJSON(t, app, "POST", "/experiments", map[string]interface{}{
		"notebook_id": notebook.Id,
		"title":       "Aspirin",
		"date":        "2024-05-01",
		"objective":   "acetylate salicylic acid",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	created := decode[map[string]interface{}](t, resp)
	assert.Equal(t, "Aspirin", created["title"])
	assert.Nil(t, created["results"])
	assert.Contains(t, created, "reaction_image")
	id := int64(created["id"].(float64))

	t.Run("validation", func(t *testing.T) {
		resp := doJSON(t, app, "POST", "/experiments", map[string]interface{}{"notebook_id": notebook.Id, "title": "x"})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "date is required", decode[map[string]string](t, resp)["detail"])
	})

	t.Run("list requires notebook_id", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/experiments", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("notebook_id zero is a value", func(t *testing.T) {
		resp := doJSON(t, app, "GET", "/experiments?notebook_id=0", nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Empty(t, decode[[]dto.ExperimentResponse](t, resp))

		resp = doJSON(t, app, "GET", "/experiments?notebook_id=abc", nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("list with filters", func(t *testing.T) {
		resp := doJSON(t, app, "GET", fmt.Sprintf("/experiments?notebook_id=%d&title=spir&start_date=2024-05-01", notebook.Id), nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		list := decode[[]dto.ExperimentResponse](t, resp)
		require.Len(t, list, 1)
		assert.Equal(t, id, list[0].Id)

		resp = doJSON(t, app, "GET", fmt.Sprintf("/experiments?notebook_id=%d&date=2024-05-02", notebook.Id), nil)
		assert.Empty(t, decode[[]dto.ExperimentResponse](t, resp))
	})

	t.Run("partial update", func(t *testing.T) {
		resp := doJSON(t, app, "PUT", fmt.Sprintf("/experiments/%d", id), map[string]interface{}{"results": "85% yield", "notes": nil})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		updated := decode[dto.ExperimentResponse](t, resp)
		assert.Equal(t, "Aspirin", updated.Title)
		require.NotNil(t, updated.Objective)
		assert.Equal(t, "acetylate salicylic acid", *updated.Objective)
		require.NotNil(t, updated.Results)
		assert.Equal(t, "85% yield", *updated.Results)
	})

	t.Run("update missing", func(t *testing.T) {
		resp := doJSON(t, app, "PUT", "/experiments/9999", map[string]interface{}{"title": "ghost"})
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		assert.NotEmpty(t, decode[map[string]string](t, resp)["detail"])
	})

	t.Run("show", func(t *testing.T) {
		resp := doJSON(t, app, "GET", fmt.Sprintf("/experiments/%d", id), nil)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp = doJSON(t, app, "GET", "/experiments/9999", nil)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			resp := doJSON(t, app, "DELETE", fmt.Sprintf("/experiments/%d", id), nil)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.True(t, decode[dto.OkResponse](t, resp).Ok)
		}
	})
}

func TestNotebookDeleteCascadesOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)

	notebook := decode[dto.NotebookResponse](t, doJSON(t, app, "POST", "/notebooks", map[string]string{"name": "N"}))
	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, "POST", "/experiments", map[string]interface{}{
			"notebook_id": notebook.Id, "title": fmt.Sprintf("run %d", i), "date": "2024-01-01",
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp := doJSON(t, app, "DELETE", fmt.Sprintf("/notebooks/%d", notebook.Id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, "GET", fmt.Sprintf("/experiments?notebook_id=%d", notebook.Id), nil)
	assert.Empty(t, decode[[]dto.ExperimentResponse](t, resp))
}

func TestReactionImageEndpoints(t *testing.T) {
	app, store := newTestApp(t)

	t.Run("rejects non-image", func(t *testing.T) {
		resp, err := app.Test(multipartUpload(t, "notes.txt", "text/plain", []byte("hi")), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Only image uploads are allowed", decode[map[string]string](t, resp)["detail"])
		assert.Empty(t, store.Keys())
	})

	t.Run("missing file", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/upload-reaction-image", strings.NewReader(""))
		req.Header.Set("Content-Type", "multipart/form-data; boundary=none")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("upload and serve", func(t *testing.T) {
		content := []byte("\x89PNG\r\n\x1a\n")
		resp, err := app.Test(multipartUpload(t, "scheme.jpg", "image/jpeg", content), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		uploaded := decode[dto.UploadReactionImageResponse](t, resp)
		assert.True(t, strings.HasPrefix(uploaded.Url, "/static/reactions/"))
		assert.True(t, strings.HasSuffix(uploaded.Url, ".jpg"))

		resp, err = app.Test(httptest.NewRequest("GET", uploaded.Url, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
		served, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, served)
	})

	t.Run("serve missing", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/static/reactions/nope.png", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/healthz", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[dto.HealthResponse](t, resp).Status)
}

func TestMetricsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	doJSON(t, app, "GET", "/notebooks", nil)
	doJSON(t, app, "GET", "/experiments/404", nil)

	resp := doJSON(t, app, "GET", "/metrics", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `route="/notebooks",status="200"`)
	assert.Contains(t, string(raw), `route="/experiments/:id",status="404"`)
}

func TestCorsPreflight(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("OPTIONS", "/notebooks", nil)
	req.Header.Set("Origin", "http://localhost:8001")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8001", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
}

func TestCorsConfigWildcard(t *testing.T) {
	cfg := corsConfig(" ")
	assert.Equal(t, "*", cfg.AllowOrigins)
	assert.False(t, cfg.AllowCredentials)
}
