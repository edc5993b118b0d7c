package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"
)

// GetMaintenanceMode 查询全局维护开关
func (h *SettingsHandler) GetMaintenanceMode(c *gin.Context) {
	enabled, err := h.maintenance.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"enabled": enabled})
}

// SetMaintenanceMode 设置全局维护开关
func (h *SettingsHandler) SetMaintenanceMode(c *gin.Context) {
	enabled, err := strconv.ParseBool(c.Query("enabled"))
	if err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "invalid enabled", "")
		return
	}

	var params deleteParams
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ErrorWithStatus(c, http.StatusBadRequest, "request body is incorrect", "")
		return
	}

	if err := h.maintenance.Set(c.Request.Context(), enabled, params.Traceability, routePath(c)); err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, gin.H{"enabled": enabled})
}
