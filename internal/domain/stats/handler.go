package stats

import (
	"net/http"

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
	api.GET("/stats/overview", h.GetOverview)
}

func (h *Handler) GetOverview(c echo.Context) error {
	overview, err := h.svc.Overview(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(apperrors.HTTPStatus(err), err.Error())
	}
	return c.JSON(http.StatusOK, overview)
}
