package rest

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// FrontendHandler serves the static admin console build. Unknown paths fall
// back to the index file so client-side routing keeps working after a reload.
type FrontendHandler struct {
	dir       string
	indexFile string
}

func NewFrontendHandler(dir string, indexFile string) *FrontendHandler {
	return &FrontendHandler{dir: dir, indexFile: indexFile}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requested := filepath.Join(h.dir, filepath.Clean("/"+strings.TrimPrefix(r.URL.Path, "/")))

	info, err := os.Stat(requested)
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.indexFile))
		return
	}

	http.FileServer(http.Dir(h.dir)).ServeHTTP(w, r)
}
