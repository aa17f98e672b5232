package patient

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the owner-only profile routes; authed must already
// require a session.
func (h *Handler) RegisterRoutes(authed *echo.Group) {
	authed.GET("/me/profile", h.GetMyProfile)
	authed.PUT("/me/profile", h.UpdateMyProfile)
}

func sessionAccountID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(auth.AccountIDFromContext(c.Request().Context()))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return id, nil
}

func (h *Handler) GetMyProfile(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.GetByAccount(c.Request().Context(), accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateMyProfile(c echo.Context) error {
	accountID, err := sessionAccountID(c)
	if err != nil {
		return err
	}

	var patch Patient
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.svc.UpdateOwn(c.Request().Context(), accountID, &patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "profile not found")
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, updated)
}
