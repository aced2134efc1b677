package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trinesolutions/website-backend/internal/uploader"
)

// AdminUploadHandler proxies admin image uploads to the external image
// host.
type AdminUploadHandler struct {
	Uploader *uploader.Cloudinary
}

// UploadImage handles POST /api/admin/upload-image (multipart: file,
// optional folder).  When no Cloudinary credentials are configured the
// endpoint answers 404, which the frontend reads as "uploads unavailable
// on this deployment".
func (h *AdminUploadHandler) UploadImage(c echo.Context) error {
	if h.Uploader == nil || !h.Uploader.Enabled() {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "image upload not available"})
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable file"})
	}
	defer src.Close()

	folder := c.FormValue("folder")

	res, err := h.Uploader.Upload(c.Request().Context(), src, fh.Filename, folder)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "upload failed"})
	}
	return c.JSON(http.StatusOK, res)
}
