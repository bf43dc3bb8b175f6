package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nurpe/obras-portal/internal/model"
	"github.com/nurpe/obras-portal/internal/service"
)

func (h *Handler) dashboard(c *gin.Context) {
	d, err := h.portal.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) exportDashboard(c *gin.Context) {
	result, err := h.reports.DashboardXLSX(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, result)
}

func (h *Handler) adminListProjects(c *gin.Context) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	page, err := intQuery(c, "page", 1)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.admin.ListProjects(c.Request.Context(), filter, page)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) createProject(c *gin.Context) {
	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := h.admin.CreateProject(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) updateProject(c *gin.Context) {
	var req service.ProjectInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	project, err := h.admin.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) exportProjects(c *gin.Context) {
	filter, err := parseProjectFilter(c)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.reports.ProjectsXLSX(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}
	sendFile(c, result)
}

func (h *Handler) listUsers(c *gin.Context) {
	page, err := intQuery(c, "page", 1)
	if err != nil {
		h.handleError(c, err)
		return
	}
	result, err := h.admin.ListUsers(c.Request.Context(), service.UserFilter{
		Search: c.Query("q"),
		Role:   strings.TrimSpace(c.Query("role")),
		Status: strings.TrimSpace(c.Query("status")),
	}, page)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) createUser(c *gin.Context) {
	var req service.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.admin.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *Handler) updateUser(c *gin.Context) {
	var req service.UserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := h.admin.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) listProfiles(c *gin.Context) {
	profiles, err := h.admin.ListProfiles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": profiles})
}

func (h *Handler) createProfile(c *gin.Context) {
	var req service.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.admin.CreateProfile(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req service.ProfileInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.admin.UpdateProfile(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) permissions(c *gin.Context) {
	groups, err := h.admin.PermissionGroups(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": groups})
}

func (h *Handler) getSettings(c *gin.Context) {
	settings, err := h.admin.Settings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *Handler) saveSettings(c *gin.Context) {
	var req model.PortalSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.admin.SaveSettings(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
