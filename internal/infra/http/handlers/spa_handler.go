package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// SPAHandler serve o bundle do frontend. Caminho que não corresponde a um
// arquivo existente cai no index.html, deixando o roteamento com o
// client-side.
type SPAHandler struct {
	StaticDir string
}

func NewSPAHandler(staticDir string) *SPAHandler {
	return &SPAHandler{StaticDir: staticDir}
}

func (h *SPAHandler) Handle(w http.ResponseWriter, r *http.Request) {
	reqPath := filepath.Clean(strings.TrimPrefix(r.URL.Path, "/"))
	if reqPath == "." || strings.HasPrefix(reqPath, "..") {
		reqPath = "index.html"
	}

	full := filepath.Join(h.StaticDir, reqPath)
	if info, err := os.Stat(full); err == nil && !info.IsDir() {
		http.ServeFile(w, r, full)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.StaticDir, "index.html"))
}
