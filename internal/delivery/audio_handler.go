package delivery

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Dzigojty/Audio-file-downloader/internal/domain"
	"github.com/Dzigojty/Audio-file-downloader/internal/ports"
	"go.uber.org/zap"
)

const maxUploadMemory = 32 << 20

type AudioHandler struct {
	audio ports.AudioService
	log   *zap.Logger
}

func NewAudioHandler(audio ports.AudioService, log *zap.Logger) *AudioHandler {
	return &AudioHandler{
		audio: audio,
		log:   log,
	}
}

// POST /audio/  (multipart form: name, file)
func (h *AudioHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	name := r.FormValue("name")
	if name == "" {
		http.Error(w, "missing name", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := h.audio.Upload(r.Context(), user.ID, name, header.Filename, file)
	if err != nil {
		if errors.Is(err, domain.ErrNoFilename) {
			http.Error(w, "no filename provided", http.StatusBadRequest)
			return
		}
		// internal detail stays in the log
		h.log.Error("audio upload failed",
			zap.Int64("userID", user.ID),
			zap.Error(err),
		)
		http.Error(w, "failed to upload audio file", http.StatusInternalServerError)
		return
	}

	h.log.Info("audio uploaded",
		zap.Int64("userID", user.ID),
		zap.Int64("audioID", audio.ID),
		zap.String("path", audio.FilePath),
	)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(audio)
}

// GET /audio/
func (h *AudioHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	audios, err := h.audio.List(r.Context(), user.ID)
	if err != nil {
		h.log.Error("list audios failed",
			zap.Int64("userID", user.ID),
			zap.Error(err),
		)
		http.Error(w, "failed to list audio files", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(audios)
}
