package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestStaticHandler() *StaticHandler {
	fsys := fstest.MapFS{
		"index.html":       {Data: []byte("<h1>Hi</h1>")},
		"app.js":           {Data: []byte("console.log('hi')")},
		"style.css":        {Data: []byte("body {}")},
		"docs/index.html":  {Data: []byte("<h1>Docs</h1>")},
		"empty/readme.txt": {Data: []byte("no index here")},
		".env":             {Data: []byte("SECRET=1")},
		".git/config":      {Data: []byte("[core]")},
	}

	return NewStaticHandlerFS(fsys, zap.NewNop())
}

func serve(handler http.Handler, method, target string) *http.Response {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	return w.Result()
}

func TestStaticHandler_ServesFile(t *testing.T) {
	tests := []struct {
		path        string
		body        string
		contentType string
	}{
		{"/index.html", "<h1>Hi</h1>", "text/html; charset=utf-8"},
		{"/style.css", "body {}", "text/css; charset=utf-8"},
		{"/docs/index.html", "<h1>Docs</h1>", "text/html; charset=utf-8"},
	}

	handler := newTestStaticHandler()

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			res := serve(handler, http.MethodGet, tt.path)
			defer res.Body.Close()

			body, _ := io.ReadAll(res.Body)

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, tt.body, string(body))
			assert.Equal(t, tt.contentType, res.Header.Get("Content-Type"))
		})
	}
}

func TestStaticHandler_ServesJavaScript(t *testing.T) {
	res := serve(newTestStaticHandler(), http.MethodGet, "/app.js")
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "console.log('hi')", string(body))
	assert.Contains(t, res.Header.Get("Content-Type"), "javascript")
}

func TestStaticHandler_Head(t *testing.T) {
	res := serve(newTestStaticHandler(), http.MethodHead, "/index.html")
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Empty(t, body)
}

func TestStaticHandler_DirectoryIndex(t *testing.T) {
	handler := newTestStaticHandler()

	res := serve(handler, http.MethodGet, "/")
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<h1>Hi</h1>", string(body))

	res = serve(handler, http.MethodGet, "/docs/")
	defer res.Body.Close()

	body, _ = io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "<h1>Docs</h1>", string(body))
}

func TestStaticHandler_DirectoryRedirect(t *testing.T) {
	res := serve(newTestStaticHandler(), http.MethodGet, "/docs?page=2")
	defer res.Body.Close()

	assert.Equal(t, http.StatusMovedPermanently, res.StatusCode)
	assert.Equal(t, "/docs/?page=2", res.Header.Get("Location"))
}

func TestStaticHandler_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"missing file", http.MethodGet, "/missing.txt"},
		{"missing nested file", http.MethodGet, "/docs/missing.txt"},
		{"directory without index", http.MethodGet, "/empty/"},
		{"dotfile", http.MethodGet, "/.env"},
		{"dot directory", http.MethodGet, "/.git/config"},
		{"traversal", http.MethodGet, "/../../etc/passwd"},
		{"log route with GET", http.MethodGet, "/log"},
		{"unsupported method", http.MethodPost, "/index.html"},
		{"delete", http.MethodDelete, "/index.html"},
	}

	handler := newTestStaticHandler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := serve(handler, tt.method, tt.path)
			defer res.Body.Close()

			body, _ := io.ReadAll(res.Body)

			assert.Equal(t, http.StatusNotFound, res.StatusCode)
			assert.Equal(t, "404 page not found\n", string(body))
		})
	}
}

func TestIsHidden(t *testing.T) {
	assert.False(t, isHidden("."))
	assert.False(t, isHidden("index.html"))
	assert.False(t, isHidden("docs/index.html"))
	assert.True(t, isHidden(".env"))
	assert.True(t, isHidden(".git/config"))
	assert.True(t, isHidden("docs/.hidden"))
}
