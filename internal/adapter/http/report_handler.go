package http

import (
	"net/http"

	mw "lecturer-claims-service/internal/adapter/middleware"
	reportuc "lecturer-claims-service/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ uc *reportuc.Usecase }

func NewReportHandler(uc *reportuc.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

func (h *ReportHandler) Dashboard(c echo.Context) error {
	actor, ok := mw.ActorFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no actor resolved"})
	}
	dto, err := h.uc.Dashboard(c.Request().Context(), actor.ID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ReportHandler) ClaimsReport(c echo.Context) error {
	dto, err := h.uc.ClaimsReport(c.Request().Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
