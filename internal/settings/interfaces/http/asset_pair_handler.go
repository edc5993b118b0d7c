package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// ListAssetPairs 列出资产对，可按主体与撮合模式过滤
func (h *SettingsHandler) ListAssetPairs(c *gin.Context) {
	legalEntity := c.Query("legalEntity")
	mode := domain.MatchingEngineMode(c.Query("matchingEngineMode"))

	pairs, err := h.pairs.List(c.Request.Context(), legalEntity, mode)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pairs)
}

// ListAssetPairsByPages 分页列出资产对
func (h *SettingsHandler) ListAssetPairsByPages(c *gin.Context) {
	skip, take, err := pagingParams(c)
	if err != nil {
		respondError(c, err)
		return
	}
	legalEntity := c.Query("legalEntity")
	mode := domain.MatchingEngineMode(c.Query("matchingEngineMode"))

	page, err := h.pairs.ListByPages(c.Request.Context(), legalEntity, mode, skip, take)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// GetAssetPair 获取单个资产对
func (h *SettingsHandler) GetAssetPair(c *gin.Context) {
	pair, err := h.pairs.Get(c.Request.Context(), c.Param("assetPairId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if pair == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "asset pair not found", "")
		return
	}
	response.Success(c, pair)
}

// InsertAssetPair 新增资产对
func (h *SettingsHandler) InsertAssetPair(c *gin.Context) {
	var params application.AssetPairUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	pair, err := h.pairs.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pair)
}

// UpdateAssetPair 更新资产对
func (h *SettingsHandler) UpdateAssetPair(c *gin.Context) {
	var params application.AssetPairUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	pair, err := h.pairs.Update(c.Request.Context(), c.Param("assetPairId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, pair)
}

// DeleteAssetPair 删除资产对
func (h *SettingsHandler) DeleteAssetPair(c *gin.Context) {
	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.pairs.Delete(c.Request.Context(), c.Param("assetPairId"), params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
