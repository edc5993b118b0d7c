// 包 http 配置服务的 HTTP 接口层
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/logging"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/settingsservice/internal/settings/application"
	"github.com/wyfcoding/settingsservice/internal/settings/domain"
)

// SettingsHandler HTTP 处理器
// 负责处理与平台配置相关的 HTTP 请求
type SettingsHandler struct {
	assets      *application.AssetService
	pairs       *application.AssetPairService
	markets     *application.MarketService
	conditions  *application.TradingConditionService
	instruments *application.TradingInstrumentService
	routes      *application.TradingRouteService
	schedules   *application.ScheduleSettingsService
	maintenance *application.MaintenanceModeService
}

// 创建 HTTP 处理器实例
func NewSettingsHandler(
	assets *application.AssetService,
	pairs *application.AssetPairService,
	markets *application.MarketService,
	conditions *application.TradingConditionService,
	instruments *application.TradingInstrumentService,
	routes *application.TradingRouteService,
	schedules *application.ScheduleSettingsService,
	maintenance *application.MaintenanceModeService,
) *SettingsHandler {
	return &SettingsHandler{
		assets:      assets,
		pairs:       pairs,
		markets:     markets,
		conditions:  conditions,
		instruments: instruments,
		routes:      routes,
		schedules:   schedules,
		maintenance: maintenance,
	}
}

// 注册路由
// 将处理器方法绑定到 Gin 路由引擎
func (h *SettingsHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/assets", h.ListAssets)
		api.GET("/assets/by-pages", h.ListAssetsByPages)
		api.GET("/assets/:assetId", h.GetAsset)
		api.POST("/assets", h.InsertAsset)
		api.PUT("/assets/:assetId", h.UpdateAsset)
		api.DELETE("/assets/:assetId", h.DeleteAsset)

		api.GET("/assetPairs", h.ListAssetPairs)
		api.GET("/assetPairs/by-pages", h.ListAssetPairsByPages)
		api.GET("/assetPairs/:assetPairId", h.GetAssetPair)
		api.POST("/assetPairs", h.InsertAssetPair)
		api.PUT("/assetPairs/:assetPairId", h.UpdateAssetPair)
		api.DELETE("/assetPairs/:assetPairId", h.DeleteAssetPair)

		api.GET("/markets", h.ListMarkets)
		api.GET("/markets/:marketId", h.GetMarket)
		api.POST("/markets", h.InsertMarket)
		api.PUT("/markets/:marketId", h.UpdateMarket)
		api.DELETE("/markets/:marketId", h.DeleteMarket)

		api.GET("/tradingConditions", h.ListTradingConditions)
		api.GET("/tradingConditions/:tradingConditionId", h.GetTradingCondition)
		api.POST("/tradingConditions", h.InsertTradingCondition)
		api.PUT("/tradingConditions/:tradingConditionId", h.UpdateTradingCondition)

		api.GET("/tradingInstruments", h.ListTradingInstruments)
		api.GET("/tradingInstruments/by-pages", h.ListTradingInstrumentsByPages)
		api.GET("/tradingInstruments/:tradingConditionId/:instrument", h.GetTradingInstrument)
		api.POST("/tradingInstruments", h.InsertTradingInstrument)
		api.POST("/tradingInstruments/:tradingConditionId", h.AssignInstruments)
		api.PUT("/tradingInstruments/:tradingConditionId/:instrument", h.UpdateTradingInstrument)
		api.DELETE("/tradingInstruments/:tradingConditionId/:instrument", h.DeleteTradingInstrument)

		api.GET("/routes", h.ListTradingRoutes)
		api.GET("/routes/:routeId", h.GetTradingRoute)
		api.POST("/routes", h.InsertTradingRoute)
		api.PUT("/routes/:routeId", h.UpdateTradingRoute)
		api.DELETE("/routes/:routeId", h.DeleteTradingRoute)

		api.GET("/scheduleSettings", h.ListScheduleSettings)
		api.GET("/scheduleSettings/:settingId", h.GetScheduleSettings)
		api.POST("/scheduleSettings", h.InsertScheduleSettings)
		api.PUT("/scheduleSettings/:settingId", h.UpdateScheduleSettings)
		api.DELETE("/scheduleSettings/:settingId", h.DeleteScheduleSettings)

		api.GET("/service/maintenance", h.GetMaintenanceMode)
		api.POST("/service/maintenance", h.SetMaintenanceMode)
	}
}

// deleteParams 删除类请求的请求体，仅携带追溯信息
type deleteParams struct {
	Traceability *domain.TraceableMessage `json:"traceability"`
}

// respondError 把领域错误映射到 HTTP 状态码
func respondError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		response.ErrorWithStatus(c, http.StatusConflict, err.Error(), "")
		return
	}
	var ruleErr *domain.BusinessRuleError
	if errors.As(err, &ruleErr) {
		response.ErrorWithStatus(c, http.StatusBadRequest, err.Error(), "")
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		response.ErrorWithStatus(c, http.StatusNotFound, err.Error(), "")
		return
	}

	logging.Error(c.Request.Context(), "Request failed", "path", c.Request.URL.Path, "error", err)
	response.ErrorWithStatus(c, http.StatusInternalServerError, err.Error(), "")
}

// pagingParams 解析 skip/take 查询参数，越界由应用层收敛
func pagingParams(c *gin.Context) (int, int, error) {
	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		return 0, 0, domain.NewValidationError("skip", "must be an integer")
	}
	take, err := strconv.Atoi(c.DefaultQuery("take", "0"))
	if err != nil {
		return 0, 0, domain.NewValidationError("take", "must be an integer")
	}
	return skip, take, nil
}

// routePath 变更事件中记录的来源路由
func routePath(c *gin.Context) string {
	return c.Request.URL.Path
}
