package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	PrometheusQuery        = define[model.PrometheusRequest, model.PrometheusQueryResponse](pattern.PrometheusQuery)
	PrometheusIsReachable  = define[model.PrometheusRequest, bool](pattern.PrometheusIsReachable)
	PrometheusValues       = define[model.PrometheusRequest, []string](pattern.PrometheusValues)
	PrometheusChartsAdd    = define[model.PrometheusChartRequest, string](pattern.PrometheusChartsAdd)
	PrometheusChartsRemove = define[model.PrometheusChartRefRequest, string](pattern.PrometheusChartsRemove)
	PrometheusChartsGet    = define[model.PrometheusChartRefRequest, string](pattern.PrometheusChartsGet)
	PrometheusChartsList   = define[model.PrometheusChartListRequest, map[string]string](pattern.PrometheusChartsList)
)

// AuditLogList pages through the journal of dispatched calls.
var AuditLogList = define[model.AuditLogListRequest, model.AuditLogPage](pattern.AuditLogList)
