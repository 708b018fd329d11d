package httpapi

import (
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/guniorg/mannabean-delivery-v3/internal/domain"
)

const maxImageSize = 5 << 20

func (h *Handler) uploadMenuImage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "file too large")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "error retrieving file")
		return
	}
	defer file.Close()

	if header.Size > maxImageSize {
		writeMessage(w, http.StatusBadRequest, "file too large")
		return
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeMessage(w, http.StatusBadRequest, "only image files are allowed")
		return
	}

	uploadDir := h.UploadDir
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to create upload directory")
		return
	}

	filename := "menu_" + strconv.Itoa(id) + "_" + filepath.Base(header.Filename)
	path := filepath.Join(uploadDir, filename)

	dst, err := os.Create(path)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to save file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		writeMessage(w, http.StatusInternalServerError, "failed to save file")
		return
	}

	imageURL := "/uploads/" + filename
	updated, err := h.Menu.Update(r.Context(), id, domain.MenuItemPatch{Image: &imageURL})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"image": updated.Image})
}
