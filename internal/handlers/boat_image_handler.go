package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/boat-rental/internal/domain"
	domainboat "github.com/BruksfildServices01/boat-rental/internal/domain/boat"
	"github.com/BruksfildServices01/boat-rental/internal/httperr"
	"github.com/BruksfildServices01/boat-rental/internal/httpresp"
	"github.com/BruksfildServices01/boat-rental/internal/infra/blob"
	"github.com/BruksfildServices01/boat-rental/internal/media"
	"github.com/BruksfildServices01/boat-rental/internal/middleware"
)

type BoatImageHandler struct {
	boats domainboat.Repository
	blobs blob.Store
}

func NewBoatImageHandler(boats domainboat.Repository, blobs blob.Store) *BoatImageHandler {
	return &BoatImageHandler{boats: boats, blobs: blobs}
}

// POST /boats/:boatId/image
func (h *BoatImageHandler) Upload(c *gin.Context) {
	if h.blobs == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "storage_unavailable", "Image storage is not configured.")
		return
	}

	boatID, ok := pathID(c, "boatId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	boat, err := h.boats.GetBoat(ctx, boatID)
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, httperr.CodeBoatNotFound, httperr.Message(httperr.CodeBoatNotFound))
		return
	}
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	userID, _ := middleware.UserID(c)
	if !domainboat.CanManage(boat, userID, c.GetString(middleware.ContextUserRole)) {
		httperr.Forbidden(c, httperr.CodeForbidden, httperr.Message(httperr.CodeForbidden))
		return
	}

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Form field image is required.")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Image exceeds the upload limit.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, err)
		return
	}
	defer f.Close()

	body, err := media.ToWebP(f)
	if errors.Is(err, media.ErrUnsupportedImage) {
		httperr.BadRequest(c, "unsupported_image", "Unsupported image format.")
		return
	}
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	key := fmt.Sprintf("boats/%d/%s.webp", boatID, uuid.NewString())
	url, err := h.blobs.Put(ctx, key, body, media.ContentType)
	if err != nil {
		httperr.Internal(c, err)
		return
	}

	if err := h.boats.SetImage(ctx, boatID, url); err != nil {
		httperr.Internal(c, err)
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}
