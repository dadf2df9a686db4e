package controllers

import (
	"io"

	"github.com/Hamdan-B/FoodiesHub/pkg/resp"
	"github.com/Hamdan-B/FoodiesHub/storage"

	"github.com/gin-gonic/gin"
)

// 5 MiB per image
const maxUploadBytes = 5 << 20

type UploadController struct{ Uploader storage.Uploader }

func NewUploadController(up storage.Uploader) *UploadController {
	return &UploadController{Uploader: up}
}

// POST /uploads/:kind — kind is stores, foods or riders.
func (uc *UploadController) Upload(c *gin.Context) {
	kind := c.Param("kind")
	if !storage.ValidKind(kind) {
		resp.BadRequest(c, "unknown upload kind")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}
	if fh.Size > maxUploadBytes {
		resp.BadRequest(c, "file too large")
		return
	}

	f, err := fh.Open()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	url, err := uc.Uploader.Upload(kind, fh.Filename, data)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"url": url})
}
