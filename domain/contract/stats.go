package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	StatsPodstatAllForController               = define[model.ControllerStatsRequest, []model.PodStats](pattern.StatsPodstatAllForController)
	StatsTrafficAllForController               = define[model.ControllerStatsRequest, []model.PodNetworkStats](pattern.StatsTrafficAllForController)
	StatsPodstatLastForController              = define[model.K8sController, model.PodStats](pattern.StatsPodstatLastForController)
	StatsTrafficSumForController               = define[model.K8sController, model.PodNetworkStats](pattern.StatsTrafficSumForController)
	StatsTrafficForControllerSocketConnections = define[model.K8sController, model.SocketConnections](pattern.StatsTrafficForControllerSocketConnections)
	StatsTrafficSumForNamespace                = define[model.NamespaceRequest, []model.PodNetworkStats](pattern.StatsTrafficSumForNamespace)
	StatsWorkspaceCpuUtilization               = define[model.WorkspaceStatsRequest, []model.GenericChartEntry](pattern.StatsWorkspaceCpuUtilization)
	StatsWorkspaceMemoryUtilization            = define[model.WorkspaceStatsRequest, []model.GenericChartEntry](pattern.StatsWorkspaceMemoryUtilization)
	StatsWorkspaceTrafficUtilization           = define[model.WorkspaceStatsRequest, []model.GenericChartEntry](pattern.StatsWorkspaceTrafficUtilization)
	MetricsDeploymentAverageUtilization        = define[model.K8sController, model.Metrics](pattern.MetricsDeploymentAverageUtilization)
)
