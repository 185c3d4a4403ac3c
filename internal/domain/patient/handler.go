package patient

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wardtrack/wardtrack/internal/platform/apperrors"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients", h.CreatePatient)
	api.GET("/patients", h.ListPatients)
	api.GET("/patients/:id", h.GetPatient)
	api.PUT("/patients/:id", h.UpdatePatient)
	api.DELETE("/patients/:id", h.DeletePatient)
}

func (h *Handler) CreatePatient(c echo.Context) error {
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Create(c.Request().Context(), &in)
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) ListPatients(c echo.Context) error {
	f := Filter{
		Search: c.QueryParam("search"),
		Ward:   c.QueryParam("ward"),
	}
	// Malformed boolean filters are ignored rather than rejected.
	if raw := c.QueryParam("high_risk"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.HighRisk = &v
		}
	}
	if raw := c.QueryParam("discharged"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Discharged = &v
		}
	}

	patients, err := h.svc.List(c.Request().Context(), f)
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	if patients == nil {
		patients = []*Patient{}
	}
	return c.JSON(http.StatusOK, patients)
}

func (h *Handler) GetPatient(c echo.Context) error {
	p, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdatePatient(c echo.Context) error {
	var in UpdateInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := h.svc.Update(c.Request().Context(), c.Param("id"), &in)
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeletePatient(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Patient deleted successfully"})
}
