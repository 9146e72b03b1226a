package http

import (
	"net/http"

	mw "lecturer-claims-service/internal/adapter/middleware"
	userDomain "lecturer-claims-service/internal/domain/user"
	claimuc "lecturer-claims-service/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct{ uc *claimuc.Usecase }

func NewClaimHandler(uc *claimuc.Usecase) *ClaimHandler { return &ClaimHandler{uc: uc} }

type submitClaimReq struct {
	HoursWorked float64 `json:"hours_worked" validate:"required,gt=0,lte=180,dec2"`
	Notes       string  `json:"notes"        validate:"max=1000"`
	DocumentRef string  `json:"document_ref"`
}

// SubmitClaim admits a new claim for the acting lecturer. The owner is always
// the caller; a lecturer cannot submit on someone else's behalf.
func (h *ClaimHandler) SubmitClaim(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no actor resolved"})
	}

	var req submitClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Submit(c.Request().Context(), claimuc.SubmitClaimInput{
		UserID:      actor.ID,
		HoursWorked: req.HoursWorked,
		Notes:       req.Notes,
		DocumentRef: req.DocumentRef,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

// GetClaim returns one claim. Lecturers may only read their own; reviewers
// and HR may read any.
func (h *ClaimHandler) GetClaim(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no actor resolved"})
	}
	id, err := pathID(c, "claim_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim_id"})
	}

	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	if actor.Role == userDomain.RoleLecturer && dto.UserID != actor.ID {
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: "access denied"})
	}
	return c.JSON(http.StatusOK, dto)
}

// DeleteClaim is the HR-only administrative soft delete.
func (h *ClaimHandler) DeleteClaim(c echo.Context) error {
	id, err := pathID(c, "claim_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim_id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// MyClaims lists the acting lecturer's claims, most recent first.
func (h *ClaimHandler) MyClaims(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no actor resolved"})
	}
	dtos, err := h.uc.ListForUser(c.Request().Context(), actor.ID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
