package catalog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/arogya/arogya/pkg/pagination"
)

// AvailabilityInfo supplies the booking window shown on a doctor's detail
// page. Implemented by the booking service.
type AvailabilityInfo interface {
	BookableDates() []time.Time
	TimeGrid() []string
}

type Handler struct {
	svc          *Svc
	availability AvailabilityInfo
}

func NewHandler(svc *Svc, availability AvailabilityInfo) *Handler {
	return &Handler{svc: svc, availability: availability}
}

func (h *Handler) RegisterRoutes(api *echo.Group, admin *echo.Group) {
	api.GET("/hospital", h.GetHospital)
	api.GET("/departments", h.ListDepartments)
	api.GET("/departments/:id", h.GetDepartment)
	api.GET("/doctors", h.ListDoctors)
	api.GET("/doctors/:id", h.GetDoctor)
	api.GET("/services", h.ListServices)
	api.GET("/infrastructure", h.ListInfrastructure)
	api.GET("/testimonials", h.ListTestimonials)

	admin.PUT("/hospital", h.SaveHospital)
	admin.POST("/departments", h.CreateDepartment)
	admin.PUT("/departments/:id", h.UpdateDepartment)
	admin.DELETE("/departments/:id", h.DeleteDepartment)
	admin.POST("/doctors", h.CreateDoctor)
	admin.PUT("/doctors/:id", h.UpdateDoctor)
	admin.DELETE("/doctors/:id", h.DeleteDoctor)
	admin.POST("/services", h.CreateService)
	admin.PUT("/services/:id", h.UpdateService)
	admin.DELETE("/services/:id", h.DeleteService)
	admin.POST("/infrastructure", h.CreateInfrastructure)
	admin.PUT("/infrastructure/:id", h.UpdateInfrastructure)
	admin.DELETE("/infrastructure/:id", h.DeleteInfrastructure)
	admin.POST("/testimonials", h.CreateTestimonial)
	admin.PUT("/testimonials/:id", h.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", h.DeleteTestimonial)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// mapErr translates service errors to HTTP errors.
func mapErr(err error) error {
	if IsNotFound(err) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// -- Hospital --

func (h *Handler) GetHospital(c echo.Context) error {
	hosp, err := h.svc.GetHospital(c.Request().Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, hosp)
}

func (h *Handler) SaveHospital(c echo.Context) error {
	var hosp Hospital
	if err := c.Bind(&hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.SaveHospital(c.Request().Context(), &hosp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, hosp)
}

// -- Departments --

func (h *Handler) ListDepartments(c echo.Context) error {
	items, err := h.svc.ListDepartments(c.Request().Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

// GetDepartment returns the department together with its doctors and
// services, the way the public department page shows them.
func (h *Handler) GetDepartment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	dept, err := h.svc.GetDepartment(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	doctors, err := h.svc.ListDoctorsByDepartment(ctx, id)
	if err != nil {
		return mapErr(err)
	}
	services, err := h.svc.ListServices(ctx, &id)
	if err != nil {
		return mapErr(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"department": dept,
		"doctors":    doctors,
		"services":   services,
	})
}

func (h *Handler) CreateDepartment(c echo.Context) error {
	var d Department
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDepartment(c.Request().Context(), &d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) UpdateDepartment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var d Department
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	if err := h.svc.UpdateDepartment(c.Request().Context(), &d); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDepartment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDepartment(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Doctors --

func (h *Handler) ListDoctors(c echo.Context) error {
	pg := pagination.FromContext(c)
	filter := DoctorFilter{
		Search:        c.QueryParam("search"),
		AvailableOnly: c.QueryParam("available") == "true",
	}
	if deptParam := c.QueryParam("department_id"); deptParam != "" {
		deptID, err := strconv.ParseInt(deptParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid department_id")
		}
		filter.DepartmentID = &deptID
	}

	items, total, err := h.svc.ListDoctors(c.Request().Context(), filter, pg.Limit, pg.Offset)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}

// GetDoctor returns the doctor together with the dates and time grid open
// for booking.
func (h *Handler) GetDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	doc, err := h.svc.GetDoctor(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}

	dates := h.availability.BookableDates()
	formatted := make([]string, 0, len(dates))
	for _, d := range dates {
		formatted = append(formatted, d.Format("2006-01-02"))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"doctor":         doc,
		"bookable_dates": formatted,
		"time_grid":      h.availability.TimeGrid(),
	})
}

func (h *Handler) CreateDoctor(c echo.Context) error {
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateDoctor(c.Request().Context(), &d); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) UpdateDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var d Doctor
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	d.ID = id
	if err := h.svc.UpdateDoctor(c.Request().Context(), &d); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) DeleteDoctor(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteDoctor(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Services --

func (h *Handler) ListServices(c echo.Context) error {
	var departmentID *int64
	if deptParam := c.QueryParam("department_id"); deptParam != "" {
		deptID, err := strconv.ParseInt(deptParam, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid department_id")
		}
		departmentID = &deptID
	}
	items, err := h.svc.ListServices(c.Request().Context(), departmentID)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateService(c echo.Context) error {
	var s Service
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateService(c.Request().Context(), &s); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *Handler) UpdateService(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var s Service
	if err := c.Bind(&s); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	s.ID = id
	if err := h.svc.UpdateService(c.Request().Context(), &s); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, s)
}

func (h *Handler) DeleteService(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteService(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Infrastructure --

func (h *Handler) ListInfrastructure(c echo.Context) error {
	items, err := h.svc.ListInfrastructure(c.Request().Context())
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateInfrastructure(c echo.Context) error {
	var i Infrastructure
	if err := c.Bind(&i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateInfrastructure(c.Request().Context(), &i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, i)
}

func (h *Handler) UpdateInfrastructure(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var i Infrastructure
	if err := c.Bind(&i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	i.ID = id
	if err := h.svc.UpdateInfrastructure(c.Request().Context(), &i); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, i)
}

func (h *Handler) DeleteInfrastructure(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteInfrastructure(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// -- Testimonials --

func (h *Handler) ListTestimonials(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	items, err := h.svc.ListPublishedTestimonials(c.Request().Context(), limit)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) CreateTestimonial(c echo.Context) error {
	var t Testimonial
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.svc.CreateTestimonial(c.Request().Context(), &t); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *Handler) UpdateTestimonial(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var t Testimonial
	if err := c.Bind(&t); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	t.ID = id
	if err := h.svc.UpdateTestimonial(c.Request().Context(), &t); err != nil {
		if IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, t)
}

func (h *Handler) DeleteTestimonial(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.svc.DeleteTestimonial(c.Request().Context(), id); err != nil {
		return mapErr(err)
	}
	return c.NoContent(http.StatusNoContent)
}
