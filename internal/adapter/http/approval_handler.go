package http

import (
	"net/http"

	mw "lecturer-claims-service/internal/adapter/middleware"
	approvaluc "lecturer-claims-service/internal/usecase/approval"

	"github.com/labstack/echo/v4"
)

type ApprovalHandler struct{ uc *approvaluc.Usecase }

func NewApprovalHandler(uc *approvaluc.Usecase) *ApprovalHandler { return &ApprovalHandler{uc: uc} }

type rejectClaimReq struct {
	Reason string `json:"reason" validate:"required"`
}

func (h *ApprovalHandler) ApproveClaim(c echo.Context) error {
	return h.decide(c, approvaluc.DecisionApprove, "")
}

func (h *ApprovalHandler) RejectClaim(c echo.Context) error {
	var req rejectClaimReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	return h.decide(c, approvaluc.DecisionReject, req.Reason)
}

func (h *ApprovalHandler) decide(c echo.Context, decision approvaluc.Decision, reason string) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no actor resolved"})
	}
	id, err := pathID(c, "claim_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid claim_id"})
	}

	dto, err := h.uc.Decide(c.Request().Context(), approvaluc.DecideInput{
		ClaimID:         id,
		Decision:        decision,
		ApproverID:      actor.ID,
		RejectionReason: reason,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// Pending lists undecided claims oldest-first for reviewers.
func (h *ApprovalHandler) Pending(c echo.Context) error {
	dtos, err := h.uc.Pending(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *ApprovalHandler) History(c echo.Context) error {
	entries, err := h.uc.History(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}
