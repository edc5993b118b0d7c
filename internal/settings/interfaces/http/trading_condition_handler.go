package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
)

// ListTradingConditions 列出交易条件，可按 isDefault 过滤
func (h *SettingsHandler) ListTradingConditions(c *gin.Context) {
	var isDefault *bool
	if raw := c.Query("isDefault"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			response.ErrorWithStatus(c, http.StatusBadRequest, "invalid isDefault", "")
			return
		}
		isDefault = &parsed
	}

	conditions, err := h.conditions.List(c.Request.Context(), isDefault)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, conditions)
}

// GetTradingCondition 获取单个交易条件
func (h *SettingsHandler) GetTradingCondition(c *gin.Context) {
	condition, err := h.conditions.Get(c.Request.Context(), c.Param("tradingConditionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if condition == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "trading condition not found", "")
		return
	}
	response.Success(c, condition)
}

// InsertTradingCondition 新增交易条件
func (h *SettingsHandler) InsertTradingCondition(c *gin.Context) {
	var params application.TradingConditionUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	condition, err := h.conditions.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, condition)
}

// UpdateTradingCondition 更新交易条件
func (h *SettingsHandler) UpdateTradingCondition(c *gin.Context) {
	var params application.TradingConditionUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	condition, err := h.conditions.Update(c.Request.Context(), c.Param("tradingConditionId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, condition)
}
