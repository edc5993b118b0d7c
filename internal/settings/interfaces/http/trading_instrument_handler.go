package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
)

// ListTradingInstruments 列出交易品种，可按交易条件过滤
func (h *SettingsHandler) ListTradingInstruments(c *gin.Context) {
	instruments, err := h.instruments.List(c.Request.Context(), c.Query("tradingConditionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, instruments)
}

// ListTradingInstrumentsByPages 分页列出交易品种
func (h *SettingsHandler) ListTradingInstrumentsByPages(c *gin.Context) {
	skip, take, err := pagingParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.instruments.ListByPages(c.Request.Context(), c.Query("tradingConditionId"), skip, take)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// GetTradingInstrument 获取单个交易品种
func (h *SettingsHandler) GetTradingInstrument(c *gin.Context) {
	instrument, err := h.instruments.Get(c.Request.Context(),
		c.Param("tradingConditionId"), c.Param("instrument"))
	if err != nil {
		respondError(c, err)
		return
	}
	if instrument == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "trading instrument not found", "")
		return
	}
	response.Success(c, instrument)
}

// InsertTradingInstrument 新增交易品种
func (h *SettingsHandler) InsertTradingInstrument(c *gin.Context) {
	var params application.TradingInstrumentUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	instrument, err := h.instruments.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, instrument)
}

// UpdateTradingInstrument 更新交易品种
func (h *SettingsHandler) UpdateTradingInstrument(c *gin.Context) {
	var params application.TradingInstrumentUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	instrument, err := h.instruments.Update(c.Request.Context(),
		c.Param("tradingConditionId"), c.Param("instrument"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, instrument)
}

// DeleteTradingInstrument 删除交易品种
func (h *SettingsHandler) DeleteTradingInstrument(c *gin.Context) {
	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.instruments.Delete(c.Request.Context(),
		c.Param("tradingConditionId"), c.Param("instrument"), params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}

// AssignInstruments 把交易条件下的品种集合对齐到请求集合，返回新建的品种
func (h *SettingsHandler) AssignInstruments(c *gin.Context) {
	var params application.AssignInstrumentsParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	created, err := h.instruments.AssignCollection(c.Request.Context(),
		c.Param("tradingConditionId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, created)
}
