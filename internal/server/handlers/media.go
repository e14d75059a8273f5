package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type MediaHandler struct {
	signer MediaSigner
}

func NewMediaHandler(signer MediaSigner) *MediaHandler {
	return &MediaHandler{signer: signer}
}

// UploadURL serves GET /media/upload-url: a presigned PUT target plus the
// object key to store in the listing document.
func (h *MediaHandler) UploadURL(c echo.Context) error {
	url, key, err := h.signer.PresignedPutURL(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url, "key": key})
}
