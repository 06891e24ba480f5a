package files

import (
	"os"

	"s3-uploader/core/errs"
	"s3-uploader/core/logger"
	"s3-uploader/core/uploader"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stored files.
type Handler struct {
	uploader *uploader.Uploader
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(u *uploader.Uploader, logger *zap.Logger) *Handler {
	return &Handler{uploader: u, logger: logger}
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/files")
	group.Post("/", h.HandleUpload)
	group.Get("/", h.HandleList)
	group.Delete("/", h.HandleDelete)
}

// HandleUpload stores a multipart file under the folder prefix.
// @Summary Upload File
// @Description Uploads a file. The stored name is the sanitized filename prefixed with the upload time.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param folder formData string false "Sub folder below the configured prefix"
// @Success 201 {object} map[string]string "Upload Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	tmp, err := os.CreateTemp("", "upload-*")
	if err != nil {
		l.Error("Failed to create temp file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload failed"})
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := c.SaveFile(fh, tmp.Name()); err != nil {
		l.Error("Failed to save upload", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "upload failed"})
	}

	folder := c.FormValue("folder")
	res, err := h.uploader.Add(c.Context(), uploader.File{
		DisplayName: fh.Filename,
		SourcePath:  tmp.Name(),
	}, folder)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"path":   res.Path,
		"object": res.Object,
		"key":    res.Key(),
	})
}

// HandleList lists the files under the folder prefix.
// @Summary List Files
// @Description Lists every stored file below the configured prefix, optionally narrowed to a sub folder.
// @Tags files
// @Produce json
// @Param folder query string false "Sub folder below the configured prefix"
// @Success 200 {array} uploader.StoredObject "Stored Files"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	objects, err := h.uploader.List(c.Context(), c.Query("folder"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(objects)
}

// HandleDelete removes a file by its full key.
// @Summary Delete File
// @Description Deletes a stored file. The key is the full object key returned by upload or list.
// @Tags files
// @Produce json
// @Param key query string true "Full object key"
// @Success 200 {object} map[string]bool "Deleted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /files [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	deleted, err := h.uploader.Delete(c.Context(), c.Query("key"))
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(fiber.Map{"deleted": deleted})
}

// fail maps uploader errors to a status code. Messages are generic by construction.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	if errs.IsInvalidArgument(err) {
		status = fiber.StatusBadRequest
	}
	l.Warn("Request failed", zap.String("kind", errs.KindOf(err).String()), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
