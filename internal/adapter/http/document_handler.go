package http

import (
	"net/http"
	"strings"
	"time"

	"lecturer-claims-service/pkg/id"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// DocumentHandler mints opaque supporting-document references. The workflow
// core stores the token verbatim on claims; file bytes live elsewhere.
type DocumentHandler struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDocumentHandler(rdb *redis.Client, ttl time.Duration) *DocumentHandler {
	return &DocumentHandler{rdb: rdb, ttl: ttl}
}

type registerDocumentReq struct {
	Filename string `json:"filename" validate:"required,max=255"`
}

func (h *DocumentHandler) RegisterDocument(c echo.Context) error {
	var req registerDocumentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	// keep the original name readable behind a unique prefix
	name := strings.ReplaceAll(strings.TrimSpace(req.Filename), "/", "_")
	token := id.NewID32() + "_" + name

	ctx := c.Request().Context()
	if err := h.rdb.Set(ctx, "documents:"+token, name, h.ttl).Err(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "document registry unavailable"})
	}
	return c.JSON(http.StatusCreated, map[string]string{"document_ref": token})
}
