package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/shashiranjanraj/vyapari/pkg/logger"
	"github.com/shashiranjanraj/vyapari/pkg/response"
	"github.com/shashiranjanraj/vyapari/pkg/storage"
)

const maxUploadBytes = 10 << 20 // 10 MB

var allowedImageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// MediaController accepts image uploads and stores them through the storage
// manager. The response carries the public URL the client puts on products
// and profiles.
type MediaController struct{}

func NewMediaController() *MediaController {
	return &MediaController{}
}

func (c *MediaController) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.ValidationError(w, map[string]string{"image": "The image field is required."})
		return
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(header.Filename))
	if !allowedImageExts[ext] {
		response.ValidationError(w, map[string]string{"image": "The image must be a jpg, jpeg, png, gif or webp file."})
		return
	}

	name := make([]byte, 16)
	if _, err := rand.Read(name); err != nil {
		fail(w, r, err)
		return
	}
	key := fmt.Sprintf("media/%d/%s%s", userID, hex.EncodeToString(name), ext)

	if err := storage.PutStream(key, file); err != nil {
		fail(w, r, err)
		return
	}

	logger.WithCtx(r.Context()).Info("media: stored", "key", key, "size", header.Size)
	response.Created(w, map[string]string{
		"path": key,
		"url":  storage.URL(key),
	})
}
