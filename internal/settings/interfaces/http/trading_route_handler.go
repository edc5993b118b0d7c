package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
)

// ListTradingRoutes 列出全部路由规则
func (h *SettingsHandler) ListTradingRoutes(c *gin.Context) {
	routes, err := h.routes.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, routes)
}

// GetTradingRoute 获取单条路由规则
func (h *SettingsHandler) GetTradingRoute(c *gin.Context) {
	route, err := h.routes.Get(c.Request.Context(), c.Param("routeId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if route == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "trading route not found", "")
		return
	}
	response.Success(c, route)
}

// InsertTradingRoute 新增路由规则
func (h *SettingsHandler) InsertTradingRoute(c *gin.Context) {
	var params application.TradingRouteUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	route, err := h.routes.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, route)
}

// UpdateTradingRoute 更新路由规则
func (h *SettingsHandler) UpdateTradingRoute(c *gin.Context) {
	var params application.TradingRouteUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	route, err := h.routes.Update(c.Request.Context(), c.Param("routeId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, route)
}

// DeleteTradingRoute 删除路由规则
func (h *SettingsHandler) DeleteTradingRoute(c *gin.Context) {
	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.routes.Delete(c.Request.Context(), c.Param("routeId"), params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
