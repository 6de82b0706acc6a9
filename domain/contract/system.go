package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	Describe                 = define[Empty, model.DescribeResponse](pattern.Describe)
	K8sNotification          = define[Empty, Void](pattern.K8sNotification)
	ClusterStatus            = define[Empty, model.ClusterStatus](pattern.ClusterStatus)
	ClusterResourceInfo      = define[Empty, model.ClusterResourceInfo](pattern.ClusterResourceInfo)
	UpgradeK8sManager        = define[model.UpgradeK8sManagerRequest, model.Job](pattern.UpgradeK8sManager)
	ClusterForceReconnect    = define[Empty, bool](pattern.ClusterForceReconnect)
	ClusterForceDisconnect   = define[Empty, bool](pattern.ClusterForceDisconnect)
	SystemCheck              = define[Empty, model.SystemCheckResponse](pattern.SystemCheck)
	ClusterRestart           = define[Empty, Void](pattern.ClusterRestart)
	PrintCurrentConfig       = define[Empty, string](pattern.PrintCurrentConfig)
	ClusterEnergyConsumption = define[Empty, []model.EnergyConsumption](pattern.ClusterEnergyConsumption)
)

// Installers report their outcome as a message.
var (
	InstallMetricsServer              = define[Empty, string](pattern.InstallMetricsServer)
	InstallIngressControllerTraefik   = define[Empty, string](pattern.InstallIngressControllerTraefik)
	InstallCertManager                = define[Empty, string](pattern.InstallCertManager)
	InstallClusterIssuer              = define[model.InstallClusterIssuerRequest, string](pattern.InstallClusterIssuer)
	InstallMetallb                    = define[Empty, string](pattern.InstallMetallb)
	InstallKepler                     = define[Empty, string](pattern.InstallKepler)
	UninstallMetricsServer            = define[Empty, string](pattern.UninstallMetricsServer)
	UninstallIngressControllerTraefik = define[Empty, string](pattern.UninstallIngressControllerTraefik)
	UninstallCertManager              = define[Empty, string](pattern.UninstallCertManager)
	UninstallClusterIssuer            = define[Empty, string](pattern.UninstallClusterIssuer)
	UninstallMetallb                  = define[Empty, string](pattern.UninstallMetallb)
	UninstallKepler                   = define[Empty, string](pattern.UninstallKepler)
	UpgradeMetricsServer              = define[Empty, string](pattern.UpgradeMetricsServer)
	UpgradeIngressControllerTraefik   = define[Empty, string](pattern.UpgradeIngressControllerTraefik)
	UpgradeCertManager                = define[Empty, string](pattern.UpgradeCertManager)
	UpgradeMetallb                    = define[Empty, string](pattern.UpgradeMetallb)
	UpgradeKepler                     = define[Empty, string](pattern.UpgradeKepler)
)
