package contract

import (
	"helm.sh/helm/v3/pkg/release"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	ClusterExecuteHelmChartTask       = define[model.ClusterHelmRequest, model.Job](pattern.ClusterExecuteHelmChartTask)
	ClusterUninstallHelmChart         = define[model.ClusterHelmUninstallRequest, model.Job](pattern.ClusterUninstallHelmChart)
	ClusterTcpUdpConfiguration        = define[Empty, model.TcpUdpClusterConfiguration](pattern.ClusterTcpUdpConfiguration)
	ClusterBackup                     = define[Empty, model.NamespaceBackupResponse](pattern.ClusterBackup)
	ClusterReadConfigMap              = define[model.NamespacedNameRequest, model.WorkloadResult](pattern.ClusterReadConfigMap)
	ClusterWriteConfigMap             = define[model.ClusterWriteConfigMapRequest, Void](pattern.ClusterWriteConfigMap)
	ClusterListConfigMaps             = define[model.ClusterListWorkloadsRequest, model.WorkloadResult](pattern.ClusterListConfigMaps)
	ClusterReadDeployment             = define[model.NamespacedNameRequest, model.WorkloadResult](pattern.ClusterReadDeployment)
	ClusterListDeployments            = define[model.ClusterListWorkloadsRequest, model.WorkloadResult](pattern.ClusterListDeployments)
	ClusterReadPersistentVolumeClaim  = define[model.NamespacedNameRequest, corev1.PersistentVolumeClaim](pattern.ClusterReadPersistentVolumeClaim)
	ClusterListPersistentVolumeClaims = define[model.ClusterListWorkloadsRequest, model.WorkloadResult](pattern.ClusterListPersistentVolumeClaims)
	ClusterUpdateLocalTlsSecret       = define[model.ClusterUpdateLocalTlsSecretRequest, Void](pattern.ClusterUpdateLocalTlsSecret)
	ClusterMachineStats               = define[model.MachineStatsRequest, []model.MachineStats](pattern.ClusterMachineStats)
)

// Helm repositories, charts and releases.
var (
	ClusterHelmRepoAdd             = define[model.HelmRepoAddRequest, string](pattern.ClusterHelmRepoAdd)
	ClusterHelmRepoPatch           = define[model.HelmRepoPatchRequest, string](pattern.ClusterHelmRepoPatch)
	ClusterHelmRepoUpdate          = define[Empty, []model.HelmEntryStatus](pattern.ClusterHelmRepoUpdate)
	ClusterHelmRepoList            = define[Empty, []*model.HelmEntryWithoutPassword](pattern.ClusterHelmRepoList)
	ClusterHelmChartRemove         = define[model.HelmRepoRemoveRequest, string](pattern.ClusterHelmChartRemove)
	ClusterHelmChartSearch         = define[model.HelmChartSearchRequest, []model.HelmChartInfo](pattern.ClusterHelmChartSearch)
	ClusterHelmChartInstall        = define[model.HelmChartInstallUpgradeRequest, string](pattern.ClusterHelmChartInstall)
	ClusterHelmChartShow           = define[model.HelmChartShowRequest, string](pattern.ClusterHelmChartShow)
	ClusterHelmChartVersions       = define[model.HelmChartVersionRequest, []model.HelmChartInfo](pattern.ClusterHelmChartVersions)
	ClusterHelmReleaseUpgrade      = define[model.HelmChartInstallUpgradeRequest, string](pattern.ClusterHelmReleaseUpgrade)
	ClusterHelmReleaseUninstall    = define[model.HelmReleaseUninstallRequest, string](pattern.ClusterHelmReleaseUninstall)
	ClusterHelmReleaseList         = define[model.HelmReleaseListRequest, []*release.Release](pattern.ClusterHelmReleaseList)
	ClusterHelmReleaseStatus       = define[model.HelmReleaseRequest, model.HelmReleaseStatusInfo](pattern.ClusterHelmReleaseStatus)
	ClusterHelmReleaseHistory      = define[model.HelmReleaseRequest, []*release.Release](pattern.ClusterHelmReleaseHistory)
	ClusterHelmReleaseRollback     = define[model.HelmReleaseRollbackRequest, string](pattern.ClusterHelmReleaseRollback)
	ClusterHelmReleaseGet          = define[model.HelmReleaseGetRequest, string](pattern.ClusterHelmReleaseGet)
	ClusterHelmReleaseGetWorkloads = define[model.HelmReleaseGetWorkloadsRequest, []unstructured.Unstructured](pattern.ClusterHelmReleaseGetWorkloads)
)
