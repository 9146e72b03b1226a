package http

import (
	"net/http"

	userDomain "lecturer-claims-service/internal/domain/user"
	claimuc "lecturer-claims-service/internal/usecase/claim"
	useruc "lecturer-claims-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the HR user-management surface. Route-level role gating
// happens in middleware.
type UserHandler struct {
	uc     *useruc.Usecase
	claims *claimuc.Usecase
}

func NewUserHandler(uc *useruc.Usecase, claims *claimuc.Usecase) *UserHandler {
	return &UserHandler{uc: uc, claims: claims}
}

type createUserReq struct {
	Email      string  `json:"email"       validate:"required,email"`
	FullName   string  `json:"full_name"   validate:"required,max=100"`
	Role       string  `json:"role"        validate:"required,role"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0,lte=1000,dec2"`
}

type updateUserReq struct {
	FullName   string  `json:"full_name"   validate:"required,max=100"`
	Role       string  `json:"role"        validate:"required,role"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0,lte=1000,dec2"`
	IsActive   bool    `json:"is_active"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Create(c.Request().Context(), useruc.CreateUserInput{
		Email:      req.Email,
		FullName:   req.FullName,
		Role:       userDomain.Role(req.Role),
		HourlyRate: req.HourlyRate,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	var req updateUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Update(c.Request().Context(), id, useruc.UpdateUserInput{
		FullName:   req.FullName,
		Role:       userDomain.Role(req.Role),
		HourlyRate: req.HourlyRate,
		IsActive:   req.IsActive,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// DeactivateUser is the HR "delete": records are never physically removed so
// historical claims keep resolving.
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	id, err := pathID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	if err := h.uc.Deactivate(c.Request().Context(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := pathID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

// UserClaims lists any user's claims for reviewers/HR.
func (h *UserHandler) UserClaims(c echo.Context) error {
	id, err := pathID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
	}
	dtos, err := h.claims.ListForUser(c.Request().Context(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}
