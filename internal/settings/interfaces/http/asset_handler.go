package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
)

// ListAssets 列出全部资产
func (h *SettingsHandler) ListAssets(c *gin.Context) {
	assets, err := h.assets.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, assets)
}

// ListAssetsByPages 分页列出资产
func (h *SettingsHandler) ListAssetsByPages(c *gin.Context) {
	skip, take, err := pagingParams(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.assets.ListByPages(c.Request.Context(), skip, take)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, page)
}

// GetAsset 获取单个资产
func (h *SettingsHandler) GetAsset(c *gin.Context) {
	asset, err := h.assets.Get(c.Request.Context(), c.Param("assetId"))
	if err != nil {
		respondError(c, err)
		return
	}
	if asset == nil {
		response.ErrorWithStatus(c, http.StatusNotFound, "asset not found", "")
		return
	}
	response.Success(c, asset)
}

// InsertAsset 新增资产
func (h *SettingsHandler) InsertAsset(c *gin.Context) {
	var params application.AssetUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	asset, err := h.assets.Insert(c.Request.Context(), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, asset)
}

// UpdateAsset 更新资产
func (h *SettingsHandler) UpdateAsset(c *gin.Context) {
	var params application.AssetUpsertParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	asset, err := h.assets.Update(c.Request.Context(), c.Param("assetId"), params, routePath(c))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, asset)
}

// DeleteAsset 删除资产，重复删除视为成功
func (h *SettingsHandler) DeleteAsset(c *gin.Context) {
	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.assets.Delete(c.Request.Context(), c.Param("assetId"), params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, nil)
}
