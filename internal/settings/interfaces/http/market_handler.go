package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
)

// ListMarkets 列出全部市场
func (h *SettingsHandler) ListMarkets(c *gin.Context) {
	markets, err := h.markets.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, markets)
}

// GetMarket 获取单个市场
func (h *SettingsHandler) GetMarket(c *gin.Context) {
	market, err := h.markets.Get(c.Request.Context(), c.Param("marketId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if market == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "market not found", "")
		return
	}
	response.Success(c, market)
}

// InsertMarket 新增市场
func (h *SettingsHandler) InsertMarket(c *gin.Context) {
	var params application.MarketUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	market, err := h.markets.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, market)
}

// UpdateMarket 更新市场
func (h *SettingsHandler) UpdateMarket(c *gin.Context) {
	var params application.MarketUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	market, err := h.markets.Update(c.Request.Context(), c.Param("marketId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, market)
}

// DeleteMarket 删除市场
func (h *SettingsHandler) DeleteMarket(c *gin.Context) {
	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.markets.Delete(c.Request.Context(), c.Param("marketId"), params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
