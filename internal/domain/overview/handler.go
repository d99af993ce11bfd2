package overview

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/clinicdesk/clinicdesk/pkg/search"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Snapshot serves the dashboard payload. An optional ?q= filters the
// appointment views by their joined display names.
func (h *Handler) Snapshot(c echo.Context) error {
	snap, err := h.svc.Snapshot(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if q := c.QueryParam("q"); q != "" {
		snap.Appointments = search.Filter(snap.Appointments, q, (*AppointmentView).SearchFields)
	}
	return c.JSON(http.StatusOK, snap)
}

func (h *Handler) DoctorDetail(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	detail, err := h.svc.DoctorDetail(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, detail)
}
