package http

import (
	"errors"
	"net/http"
	"strconv"

	claimDomain "lecturer-claims-service/internal/domain/claim"
	userDomain "lecturer-claims-service/internal/domain/user"
	useruc "lecturer-claims-service/internal/usecase/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// writeDomainError maps domain failures onto HTTP codes in one place so
// handlers stay small. Unknown errors surface as opaque 500s, never
// swallowed.
func writeDomainError(c echo.Context, err error) error {
	var ml *claimDomain.MonthlyLimitError
	switch {
	case errors.As(err, &ml):
		return c.JSON(http.StatusUnprocessableEntity, map[string]any{
			"error":          ml.Error(),
			"already_worked": ml.AlreadyWorked,
		})
	case errors.Is(err, claimDomain.ErrInvalidHours),
		errors.Is(err, claimDomain.ErrNotesTooLong),
		errors.Is(err, claimDomain.ErrMissingRejectionReason),
		errors.Is(err, useruc.ErrInvalidInput):
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	case errors.Is(err, claimDomain.ErrNotFound),
		errors.Is(err, userDomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, userDomain.ErrIneligible),
		errors.Is(err, userDomain.ErrNotApprover):
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	case errors.Is(err, claimDomain.ErrAlreadyDecided),
		errors.Is(err, userDomain.ErrEmailTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
