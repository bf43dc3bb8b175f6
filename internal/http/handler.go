package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nurpe/obras-portal/internal/model"
	"github.com/nurpe/obras-portal/internal/service"
)

const (
	defaultMapWidth  = 800
	defaultMapHeight = 600
)

type Handler struct {
	portal  *service.PortalService
	admin   *service.AdminService
	reports *service.ReportService
	log     zerolog.Logger
}

func NewHandler(portal *service.PortalService, admin *service.AdminService, reports *service.ReportService, log zerolog.Logger) *Handler {
	return &Handler{portal: portal, admin: admin, reports: reports, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.GET("/regions", h.regions)
	api.GET("/summary", h.summary)
	api.GET("/projects", h.listProjects)
	api.GET("/projects/:id", h.getProject)
	api.GET("/projects/:id/calendar", h.projectCalendar)
	api.GET("/projects/:id/location-map", h.locationMap)
	api.GET("/projects/:id/sheet.pdf", h.projectSheetPDF)
	api.GET("/updates/recent", h.recentUpdates)
	api.GET("/map", h.mapFrame)
	api.GET("/map/hit", h.mapHit)
	api.GET("/map.pdf", h.mapPDF)

	admin := api.Group("/admin")
	admin.GET("/dashboard", h.dashboard)
	admin.GET("/dashboard/export", h.exportDashboard)
	admin.GET("/projects", h.adminListProjects)
	admin.POST("/projects", h.createProject)
	admin.PUT("/projects/:id", h.updateProject)
	admin.GET("/projects/export", h.exportProjects)
	admin.GET("/users", h.listUsers)
	admin.POST("/users", h.createUser)
	admin.PUT("/users/:id", h.updateUser)
	admin.GET("/profiles", h.listProfiles)
	admin.POST("/profiles", h.createProfile)
	admin.PUT("/profiles/:id", h.updateProfile)
	admin.GET("/permissions", h.permissions)
	admin.GET("/settings", h.getSettings)
	admin.PUT("/settings", h.saveSettings)
}

func (h *Handler) regions(c *gin.Context) {
	regions, err := h.portal.Regions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": regions})
}

func (h *Handler) summary(c *gin.Context) {
	summary, err := h.portal.Summary(c.Request.Context(), c.Query("city"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) listProjects(c *gin.Context) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	projects, err := h.portal.Projects(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": projects, "total": len(projects)})
}

func (h *Handler) getProject(c *gin.Context) {
	project, err := h.portal.Project(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) projectCalendar(c *gin.Context) {
	cal, err := h.portal.Calendar(c.Request.Context(), c.Param("id"), c.Query("month"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}

func (h *Handler) locationMap(c *gin.Context) {
	width, err := floatQuery(c, "width", 400)
	if err != nil {
		h.handleError(c, err)
		return
	}
	height, err := floatQuery(c, "height", 300)
	if err != nil {
		h.handleError(c, err)
		return
	}
	frame, err := h.portal.LocationMap(c.Request.Context(), c.Param("id"), width, height)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

func (h *Handler) projectSheetPDF(c *gin.Context) {
	result, err := h.reports.ProjectSheetPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, result)
}

func (h *Handler) recentUpdates(c *gin.Context) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		h.handleError(c, err)
		return
	}
	updates, err := h.portal.RecentUpdates(c.Request.Context(), filter, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updates})
}

func (h *Handler) mapFrame(c *gin.Context) {
	q, err := parseMapQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	frame, err := h.portal.MapFrame(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, frame)
}

func (h *Handler) mapHit(c *gin.Context) {
	q, err := parseMapQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	x, err := requiredFloatQuery(c, "x")
	if err != nil {
		h.handleError(c, err)
		return
	}
	y, err := requiredFloatQuery(c, "y")
	if err != nil {
		h.handleError(c, err)
		return
	}
	tip, err := h.portal.HitTest(c.Request.Context(), q, x, y)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"hit": tip != nil, "tooltip": tip})
}

func (h *Handler) mapPDF(c *gin.Context) {
	q, err := parseMapQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.reports.MapPDF(c.Request.Context(), q)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, result)
}

func sendFile(c *gin.Context, result *service.ExportResult) {
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseProjectFilter(c *gin.Context) (service.ProjectFilter, error) {
	status := strings.TrimSpace(c.Query("status"))
	if status != "" && status != service.AllFilter {
		parsed, ok := model.ParseStatus(status)
		if !ok {
			return service.ProjectFilter{}, invalid("unknown status %q", status)
		}
		status = string(parsed)
	}
	return service.ProjectFilter{
		CityID:   strings.TrimSpace(c.Query("city")),
		District: strings.TrimSpace(c.Query("district")),
		Status:   status,
		Search:   c.Query("q"),
	}, nil
}

func parseMapQuery(c *gin.Context) (service.MapQuery, error) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		return service.MapQuery{}, err
	}
	width, err := floatQuery(c, "width", defaultMapWidth)
	if err != nil {
		return service.MapQuery{}, err
	}
	height, err := floatQuery(c, "height", defaultMapHeight)
	if err != nil {
		return service.MapQuery{}, err
	}
	q := service.MapQuery{
		Filter:      filter,
		Width:       width,
		Height:      height,
		Highlighted: c.Query("highlight"),
		Hovered:     c.Query("hover"),
	}
	if raw := c.Query("zoom"); raw != "" {
		zoom, err := strconv.Atoi(raw)
		if err != nil {
			return service.MapQuery{}, invalid("invalid zoom")
		}
		q.Zoom = &zoom
	}
	return q, nil
}
