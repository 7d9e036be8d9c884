package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaticDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>spa</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('ok')"), 0o644))
	return dir
}

// TestSPAServeArquivoExistente
func TestSPAServeArquivoExistente(t *testing.T) {
	handler := NewSPAHandler(newStaticDir(t))

	req := httptest.NewRequest("GET", "/app.js", nil)
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "console.log('ok')", w.Body.String())
}

// TestSPAFallbackParaIndex - rota desconhecida cai no index.html
func TestSPAFallbackParaIndex(t *testing.T) {
	handler := NewSPAHandler(newStaticDir(t))

	rotas := []string{"/", "/admin", "/simulacao/resultado"}
	for _, rota := range rotas {
		req := httptest.NewRequest("GET", rota, nil)
		w := httptest.NewRecorder()

		handler.Handle(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "rota %s", rota)
		assert.Equal(t, "<html>spa</html>", w.Body.String(), "rota %s", rota)
	}
}

// TestSPANaoEscapaDoDiretorio
func TestSPANaoEscapaDoDiretorio(t *testing.T) {
	dir := newStaticDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(dir), "segredo.txt"), []byte("fora"), 0o644))

	handler := NewSPAHandler(dir)

	req := httptest.NewRequest("GET", "/", nil)
	req.URL.Path = "/../segredo.txt"
	w := httptest.NewRecorder()

	handler.Handle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>spa</html>", w.Body.String())
}
