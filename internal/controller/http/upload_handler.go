package http

import (
	"net/http"

	"gamehub/internal/apperr"
	"gamehub/internal/usecase"

	"github.com/gin-gonic/gin"
)

const maxUploadSize = 20 << 20

type UploadHandler struct {
	uploadUseCase usecase.UploadUseCase
}

func NewUploadHandler(uploadUseCase usecase.UploadUseCase) *UploadHandler {
	return &UploadHandler{uploadUseCase: uploadUseCase}
}

// Create godoc
// @Summary      Register temporary uploads
// @Tags         temp-uploads
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        files formData file true "Files to upload"
// @Success      201  {object}  Response
// @Failure      400  {object}  Response
// @Router       /temp-uploads [post]
func (h *UploadHandler) Create(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, apperr.Invalid("multipart form is required"))
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		respondError(c, apperr.Invalid("no files provided"))
		return
	}

	inputs := make([]usecase.UploadInput, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	defer func() {
		for _, closeFile := range closers {
			closeFile()
		}
	}()

	for _, header := range headers {
		if header.Size > maxUploadSize {
			respondError(c, apperr.Invalid("file %s exceeds the 20MB limit", header.Filename))
			return
		}
		file, err := header.Open()
		if err != nil {
			respondError(c, apperr.ErrInternal)
			return
		}
		closers = append(closers, file.Close)
		inputs = append(inputs, usecase.UploadInput{
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		})
	}

	actor := actorFromContext(c)
	uploads, err := h.uploadUseCase.Register(actor.ID, inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, uploads)
}

// List godoc
// @Summary      List the caller's temporary uploads
// @Tags         temp-uploads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /temp-uploads [get]
func (h *UploadHandler) List(c *gin.Context) {
	actor := actorFromContext(c)

	uploads, err := h.uploadUseCase.List(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, uploads)
}

// Clear godoc
// @Summary      Delete all of the caller's temporary uploads
// @Tags         temp-uploads
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response
// @Router       /temp-uploads [delete]
func (h *UploadHandler) Clear(c *gin.Context) {
	actor := actorFromContext(c)

	msg, err := h.uploadUseCase.Clear(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, msg)
}
