package httpapi

import (
	"net/http"

	"github.com/mhartwell/equinesocial/internal/server/services"
)

// uploads are staged to disk, so cap what we buffer in memory
const maxUploadMemory = 10 << 20

func (s *Server) handleUserPhotoUpload(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r.Context())

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeBadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "file is required")
		return
	}
	defer file.Close()

	key, err := s.photos.ReplaceImage(r.Context(), services.ImageKindUser, principal, principal, file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "photo updated",
		"page_image": key,
	})
}

func (s *Server) handleHorsePhotoUpload(w http.ResponseWriter, r *http.Request) {
	principal := principalID(r.Context())

	horseID, err := pathID(r, "id")
	if err != nil {
		writeBadRequest(w, "invalid horse id")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeBadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(w, "file is required")
		return
	}
	defer file.Close()

	key, err := s.photos.ReplaceImage(r.Context(), services.ImageKindHorse, horseID, principal, file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":    "photo updated",
		"page_image": key,
	})
}
