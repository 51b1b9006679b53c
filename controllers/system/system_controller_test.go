package systemController

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Afterlife24/repairshop-server/storage"
)

// memStore is an in-memory implementation of the blob contract, enough to
// exercise the round-trip behavior of the images endpoint.
type memStore struct {
	objects map[string][]byte
	types   map[string]string
}

func newMemStore() *memStore {
	return &memStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memStore) Put(ctx context.Context, r io.Reader, key, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.objects[key] = data
	m.types[key] = contentType
	return "/api/images/" + key, nil
}

func (m *memStore) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	data, ok := m.objects[key]
	if !ok {
		return nil, "", storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), m.types[key], nil
}

func (m *memStore) Delete(ctx context.Context, locator string) error {
	delete(m.objects, storage.KeyFromLocator(locator))
	return nil
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/images/:filename", GetImage)
	app.Get("/api/service-templates", ServiceTemplates)
	return app
}

func TestGetImageRoundTrip(t *testing.T) {
	store := newMemStore()
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x01, 0x02}
	locator, err := store.Put(context.Background(), bytes.NewReader(payload), "mobile-abc.jpg", "image/jpeg")
	require.NoError(t, err)
	require.Equal(t, "/api/images/mobile-abc.jpg", locator)

	blobs = store
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, locator, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/jpeg", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, payload, body, "stored and served bytes are identical")
}

func TestGetImageNotFound(t *testing.T) {
	blobs = newMemStore()
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/images/nope.png", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetImageBeforeStorageInit(t *testing.T) {
	blobs = nil
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/images/any.png", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestServiceTemplatesStaticList(t *testing.T) {
	app := newTestApp()

	req := httptest.NewRequest(http.MethodGet, "/api/service-templates", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
