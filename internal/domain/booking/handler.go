package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/internal/platform/auth"
	"github.com/arogya/arogya/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires the booking surface. The booking route itself takes
// an optional identity; authed carries the signed-in patient routes and
// admin the back-office ones.
func (h *Handler) RegisterRoutes(public, authed, admin *echo.Group) {
	public.GET("/availability/dates", h.GetBookableDates)
	public.GET("/availability/times", h.GetTimeGrid)
	public.GET("/availability/slots", h.GetAvailableSlots)
	public.POST("/appointments", h.BookAppointment)
	public.GET("/appointments/:id", h.GetAppointment)

	authed.GET("/me/appointments", h.ListMyAppointments)

	admin.GET("/appointments", h.ListAppointments)
	admin.PATCH("/appointments/:id", h.UpdateAppointmentStatus)
}

// mapErr translates workflow errors to the HTTP taxonomy: validation 400,
// missing reference 404, slot conflict 409, anything else 500.
func mapErr(err error) error {
	switch {
	case IsValidation(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case IsNotFound(err):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSlotTaken):
		return echo.NewHTTPError(http.StatusConflict, "selected slot is already booked, please choose another slot")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) GetBookableDates(c echo.Context) error {
	dates := h.svc.BookableDates()
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"dates": formatted})
}

func (h *Handler) GetTimeGrid(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"times": h.svc.TimeGrid()})
}

func (h *Handler) GetAvailableSlots(c echo.Context) error {
	doctorID, err := strconv.ParseInt(c.QueryParam("doctor_id"), 10, 64)
	if err != nil || doctorID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid doctor_id")
	}
	date, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date")
	}

	slots, err := h.svc.AvailableSlots(c.Request().Context(), doctorID, date)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"doctor_id": doctorID,
		"date":      date.Format("2006-01-02"),
		"slots":     slots,
	})
}

func (h *Handler) BookAppointment(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var bookedBy *uuid.UUID
	if sub := auth.AccountIDFromContext(c.Request().Context()); sub != "" {
		if id, err := uuid.Parse(sub); err == nil {
			bookedBy = &id
		}
	}

	appt, err := h.svc.Book(c.Request().Context(), req, bookedBy)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (h *Handler) GetAppointment(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	appt, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, appt)
}

func (h *Handler) ListMyAppointments(c echo.Context) error {
	accountID, err := uuid.Parse(auth.AccountIDFromContext(c.Request().Context()))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	items, err := h.svc.ListMine(c.Request().Context(), accountID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, total, err := h.svc.List(c.Request().Context(), c.QueryParam("status"), pg.Limit, pg.Offset)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

func (h *Handler) UpdateAppointmentStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.svc.UpdateStatus(c.Request().Context(), id, body.Status, body.Notes)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, appt)
}
