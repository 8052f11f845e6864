package delivery

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/google/uuid"
)

// saveUploadedFile persists the multipart "file" field to a temp path.
// On failure it writes the HTTP error itself and returns ok=false.
func (h *Handler) saveUploadedFile(w http.ResponseWriter, r *http.Request) (path, filename string, ok bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "invalid multipart", Error: err})
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return "", "", false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "warn", Message: "missing file", Error: err})
		http.Error(w, "missing file: "+err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	if ext == "" {
		ext = ".wav"
	}

	dst := filepath.Join(os.TempDir(), uuid.NewString()+ext)
	out, err := os.Create(dst)
	if err != nil {
		http.Error(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
		return "", "", false
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		os.Remove(dst)
		http.Error(w, "failed to store upload: "+err.Error(), http.StatusInternalServerError)
		return "", "", false
	}

	return dst, header.Filename, true
}
