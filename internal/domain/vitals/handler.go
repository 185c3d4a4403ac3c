package vitals

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
	"github.com/wardtrack/wardtrack/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/vital-signs", h.CreateVitalSigns)
	api.GET("/vital-signs", h.ListVitalSigns)
	api.GET("/vital-signs/:id", h.GetVitalSigns)
	api.DELETE("/vital-signs/:id", h.DeleteVitalSigns)
}

func (h *Handler) CreateVitalSigns(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	vs, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, vs)
}

func (h *Handler) ListVitalSigns(c echo.Context) error {
	f := Filter{
		PatientID: c.QueryParam("patient_id"),
		Ward:      c.QueryParam("ward"),
		Limit:     pagination.Limit(c),
	}
	records, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	if records == nil {
		records = []*VitalSigns{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) GetVitalSigns(c echo.Context) error {
	vs, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, vs)
}

func (h *Handler) DeleteVitalSigns(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Vital signs record deleted successfully"})
}
