package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
)

// ListScheduleSettings 列出交易时段配置，可按市场过滤
func (h *SettingsHandler) ListScheduleSettings(c *gin.Context) {
	settings, err := h.schedules.List(c.Request.Context(), c.Query("marketId"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, settings)
}

// GetScheduleSettings 获取单条交易时段配置
func (h *SettingsHandler) GetScheduleSettings(c *gin.Context) {
	settings, err := h.schedules.Get(c.Request.Context(), c.Param("settingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if settings == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "schedule settings not found", "")
		return
	}
	response.Success(c, settings)
}

// InsertScheduleSettings 新增交易时段配置
func (h *SettingsHandler) InsertScheduleSettings(c *gin.Context) {
	var params application.ScheduleSettingsUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	settings, err := h.schedules.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, settings)
}

// UpdateScheduleSettings 更新交易时段配置
func (h *SettingsHandler) UpdateScheduleSettings(c *gin.Context) {
	var params application.ScheduleSettingsUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	settings, err := h.schedules.Update(c.Request.Context(), c.Param("settingId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, settings)
}

// DeleteScheduleSettings 删除交易时段配置
func (h *SettingsHandler) DeleteScheduleSettings(c *gin.Context) {
	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.schedules.Delete(c.Request.Context(), c.Param("settingId"), params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
