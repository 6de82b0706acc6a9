package pattern

// Pattern members. Values start at 1 so the zero Pattern is never a member.
const (
	// system
	Describe Pattern = iota + 1
	K8sNotification
	ClusterStatus
	ClusterResourceInfo
	UpgradeK8sManager
	ClusterForceReconnect
	ClusterForceDisconnect
	SystemCheck
	ClusterRestart
	PrintCurrentConfig
	ClusterEnergyConsumption

	// installer
	InstallMetricsServer
	InstallIngressControllerTraefik
	InstallCertManager
	InstallClusterIssuer
	InstallMetallb
	InstallKepler
	UninstallMetricsServer
	UninstallIngressControllerTraefik
	UninstallCertManager
	UninstallClusterIssuer
	UninstallMetallb
	UninstallKepler
	UpgradeMetricsServer
	UpgradeIngressControllerTraefik
	UpgradeCertManager
	UpgradeMetallb
	UpgradeKepler

	// stats and metrics
	StatsPodstatAllForController
	StatsTrafficAllForController
	StatsPodstatLastForController
	StatsTrafficSumForController
	StatsTrafficForControllerSocketConnections
	StatsTrafficSumForNamespace
	StatsWorkspaceCpuUtilization
	StatsWorkspaceMemoryUtilization
	StatsWorkspaceTrafficUtilization
	MetricsDeploymentAverageUtilization

	// files on persistent volumes
	FilesList
	FilesCreateFolder
	FilesRename
	FilesChown
	FilesChmod
	FilesDelete
	FilesDownload
	FilesInfo

	// cluster
	ClusterExecuteHelmChartTask
	ClusterUninstallHelmChart
	ClusterTcpUdpConfiguration
	ClusterBackup
	ClusterReadConfigMap
	ClusterWriteConfigMap
	ClusterListConfigMaps
	ClusterReadDeployment
	ClusterListDeployments
	ClusterReadPersistentVolumeClaim
	ClusterListPersistentVolumeClaims
	ClusterUpdateLocalTlsSecret
	ClusterMachineStats

	// helm
	ClusterHelmRepoAdd
	ClusterHelmRepoPatch
	ClusterHelmRepoUpdate
	ClusterHelmRepoList
	ClusterHelmChartRemove
	ClusterHelmChartSearch
	ClusterHelmChartInstall
	ClusterHelmChartShow
	ClusterHelmChartVersions
	ClusterHelmReleaseUpgrade
	ClusterHelmReleaseUninstall
	ClusterHelmReleaseList
	ClusterHelmReleaseStatus
	ClusterHelmReleaseHistory
	ClusterHelmReleaseRollback
	ClusterHelmReleaseGet
	ClusterHelmReleaseGetWorkloads

	// namespace
	NamespaceCreate
	NamespaceDelete
	NamespaceShutdown
	NamespacePodIds
	NamespaceValidateClusterPods
	NamespaceValidatePorts
	NamespaceListAll
	NamespaceGatherAllResources
	NamespaceBackup
	NamespaceRestore
	NamespaceResourceYaml

	// service
	ServiceCreate
	ServiceDelete
	ServicePodIds
	ServicePodExists
	ServicePods
	ServiceLog
	ServiceLogError
	ServiceResourceStatus
	ServiceRestart
	ServiceStop
	ServiceStart
	ServiceUpdateService
	ServiceTriggerJob
	ServiceStatus
	ServiceLogStream

	// stream connection requests
	ServiceExecShConnectionRequest
	ServiceLogStreamConnectionRequest
	ClusterComponentLogStreamConnectionRequest
	ServicePodEventStreamConnectionRequest
	ServiceClusterToolStreamConnectionRequest

	// workloads
	ListAllWorkloads
	GetWorkloadList
	GetNamespaceWorkloadList
	GetLabeledWorkloadList
	DescribeWorkload
	CreateNewWorkload
	GetWorkload
	GetWorkloadStatus
	GetWorkloadExample
	UpdateWorkload
	DeleteWorkload
	TriggerWorkload

	// workspaces
	GetWorkspaces
	CreateWorkspace
	GetWorkspace
	UpdateWorkspace
	DeleteWorkspace
	GetWorkspaceWorkloads

	// users
	GetUsers
	CreateUser
	GetUser
	UpdateUser
	DeleteUser

	// teams
	GetTeams
	CreateTeam
	GetTeam
	UpdateTeam
	DeleteTeam

	// grants
	GetGrants
	CreateGrant
	GetGrant
	UpdateGrant
	DeleteGrant

	// storage
	StorageCreateVolume
	StorageDeleteVolume
	StorageStats
	StorageNamespaceStats
	StorageStatus

	// external secrets
	ExternalSecretStoreCreate
	ExternalSecretStoreList
	ExternalSecretListAvailableSecrets
	ExternalSecretStoreDelete

	// network policies
	AttachLabeledNetworkPolicy
	DetachLabeledNetworkPolicy
	ListLabeledNetworkPolicyPorts
	ListConflictingNetworkPolicies
	RemoveConflictingNetworkPolicies
	ListControllerNetworkPolicies
	UpdateNetworkPoliciesTemplate
	ListAllNetworkPolicies
	ListNamespaceNetworkPolicies
	EnforceNetworkPolicyManager
	DisableNetworkPolicyManager
	RemoveUnmanagedNetworkPolicies
	ListOnlyNamespaceNetworkPolicies

	// cronjobs
	ListCronjobJobs

	// live streams
	LiveStreamNodesTraffic
	LiveStreamNodesMemory
	LiveStreamNodesCpu

	// prometheus
	PrometheusQuery
	PrometheusIsReachable
	PrometheusValues
	PrometheusChartsAdd
	PrometheusChartsRemove
	PrometheusChartsGet
	PrometheusChartsList

	// audit
	AuditLogList

	end
)

// patternToString is the canonical wire string of every member.
var patternToString = map[Pattern]string{
	Describe:                 "describe",
	K8sNotification:          "K8sNotification",
	ClusterStatus:            "ClusterStatus",
	ClusterResourceInfo:      "ClusterResourceInfo",
	UpgradeK8sManager:        "UpgradeK8sManager",
	ClusterForceReconnect:    "ClusterForceReconnect",
	ClusterForceDisconnect:   "ClusterForceDisconnect",
	SystemCheck:              "SYSTEM_CHECK",
	ClusterRestart:           "cluster/restart",
	PrintCurrentConfig:       "print-current-config",
	ClusterEnergyConsumption: "cluster/energy-consumption",

	InstallMetricsServer:              "install-metrics-server",
	InstallIngressControllerTraefik:   "install-ingress-controller-traefik",
	InstallCertManager:                "install-cert-manager",
	InstallClusterIssuer:              "install-cluster-issuer",
	InstallMetallb:                    "install-metallb",
	InstallKepler:                     "install-kepler",
	UninstallMetricsServer:            "uninstall-metrics-server",
	UninstallIngressControllerTraefik: "uninstall-ingress-controller-traefik",
	UninstallCertManager:              "uninstall-cert-manager",
	UninstallClusterIssuer:            "uninstall-cluster-issuer",
	UninstallMetallb:                  "uninstall-metallb",
	UninstallKepler:                   "uninstall-kepler",
	UpgradeMetricsServer:              "upgrade-metrics-server",
	UpgradeIngressControllerTraefik:   "upgrade-ingress-controller-traefik",
	UpgradeCertManager:                "upgrade-cert-manager",
	UpgradeMetallb:                    "upgrade-metallb",
	UpgradeKepler:                     "upgrade-kepler",

	StatsPodstatAllForController:               "stats/podstat/all-for-controller",
	StatsTrafficAllForController:               "stats/traffic/all-for-controller",
	StatsPodstatLastForController:              "stats/podstat/last-for-controller",
	StatsTrafficSumForController:               "stats/traffic/sum-for-controller",
	StatsTrafficForControllerSocketConnections: "stats/traffic/for-controller-socket-connections",
	StatsTrafficSumForNamespace:                "stats/traffic/sum-for-namespace",
	StatsWorkspaceCpuUtilization:               "stats/workspace-cpu-utilization",
	StatsWorkspaceMemoryUtilization:            "stats/workspace-memory-utilization",
	StatsWorkspaceTrafficUtilization:           "stats/workspace-traffic-utilization",
	MetricsDeploymentAverageUtilization:        "metrics/deployment/average-utilization",

	FilesList:         "files/list",
	FilesCreateFolder: "files/create-folder",
	FilesRename:       "files/rename",
	FilesChown:        "files/chown",
	FilesChmod:        "files/chmod",
	FilesDelete:       "files/delete",
	FilesDownload:     "files/download",
	FilesInfo:         "files/info",

	ClusterExecuteHelmChartTask:       "cluster/execute-helm-chart-task",
	ClusterUninstallHelmChart:         "cluster/uninstall-helm-chart",
	ClusterTcpUdpConfiguration:        "cluster/tcp-udp-configuration",
	ClusterBackup:                     "cluster/backup",
	ClusterReadConfigMap:              "cluster/read-configmap",
	ClusterWriteConfigMap:             "cluster/write-configmap",
	ClusterListConfigMaps:             "cluster/list-configmaps",
	ClusterReadDeployment:             "cluster/read-deployment",
	ClusterListDeployments:            "cluster/list-deployments",
	ClusterReadPersistentVolumeClaim:  "cluster/read-persistent-volume-claim",
	ClusterListPersistentVolumeClaims: "cluster/list-persistent-volume-claims",
	ClusterUpdateLocalTlsSecret:       "cluster/update-local-tls-secret",
	ClusterMachineStats:               "cluster/machine-stats",

	ClusterHelmRepoAdd:             "cluster/helm-repo-add",
	ClusterHelmRepoPatch:           "cluster/helm-repo-patch",
	ClusterHelmRepoUpdate:          "cluster/helm-repo-update",
	ClusterHelmRepoList:            "cluster/helm-repo-list",
	ClusterHelmChartRemove:         "cluster/helm-chart-remove",
	ClusterHelmChartSearch:         "cluster/helm-chart-search",
	ClusterHelmChartInstall:        "cluster/helm-chart-install",
	ClusterHelmChartShow:           "cluster/helm-chart-show",
	ClusterHelmChartVersions:       "cluster/helm-chart-versions",
	ClusterHelmReleaseUpgrade:      "cluster/helm-release-upgrade",
	ClusterHelmReleaseUninstall:    "cluster/helm-release-uninstall",
	ClusterHelmReleaseList:         "cluster/helm-release-list",
	ClusterHelmReleaseStatus:       "cluster/helm-release-status",
	ClusterHelmReleaseHistory:      "cluster/helm-release-history",
	ClusterHelmReleaseRollback:     "cluster/helm-release-rollback",
	ClusterHelmReleaseGet:          "cluster/helm-release-get",
	ClusterHelmReleaseGetWorkloads: "cluster/helm-release-get-workloads",

	NamespaceCreate:              "namespace/create",
	NamespaceDelete:              "namespace/delete",
	NamespaceShutdown:            "namespace/shutdown",
	NamespacePodIds:              "namespace/pod-ids",
	NamespaceValidateClusterPods: "namespace/validate-cluster-pods",
	NamespaceValidatePorts:       "namespace/validate-ports",
	NamespaceListAll:             "namespace/list-all",
	NamespaceGatherAllResources:  "namespace/gather-all-resources",
	NamespaceBackup:              "namespace/backup",
	NamespaceRestore:             "namespace/restore",
	NamespaceResourceYaml:        "namespace/resource-yaml",

	ServiceCreate:         "service/create",
	ServiceDelete:         "service/delete",
	ServicePodIds:         "service/pod-ids",
	ServicePodExists:      "SERVICE_POD_EXISTS",
	ServicePods:           "SERVICE_PODS",
	ServiceLog:            "service/log",
	ServiceLogError:       "service/log-error",
	ServiceResourceStatus: "service/resource-status",
	ServiceRestart:        "service/restart",
	ServiceStop:           "service/stop",
	ServiceStart:          "service/start",
	ServiceUpdateService:  "service/update-service",
	ServiceTriggerJob:     "service/trigger-job",
	ServiceStatus:         "service/status",
	ServiceLogStream:      "service/log-stream",

	ServiceExecShConnectionRequest:             "service/exec-sh-connection-request",
	ServiceLogStreamConnectionRequest:          "service/log-stream-connection-request",
	ClusterComponentLogStreamConnectionRequest: "cluster/component-log-stream-connection-request",
	ServicePodEventStreamConnectionRequest:     "service/pod-event-stream-connection-request",
	ServiceClusterToolStreamConnectionRequest:  "service/cluster-tool-stream-connection-request",

	ListAllWorkloads:         "list/all-workloads",
	GetWorkloadList:          "get/workload-list",
	GetNamespaceWorkloadList: "get/namespace-workload-list",
	GetLabeledWorkloadList:   "get/labeled-workload-list",
	DescribeWorkload:         "describe/workload",
	CreateNewWorkload:        "create/new-workload",
	GetWorkload:              "get/workload",
	GetWorkloadStatus:        "get/workload-status",
	GetWorkloadExample:       "get/workload-example",
	UpdateWorkload:           "update/workload",
	DeleteWorkload:           "delete/workload",
	TriggerWorkload:          "trigger/workload",

	GetWorkspaces:         "get/workspaces",
	CreateWorkspace:       "create/workspace",
	GetWorkspace:          "get/workspace",
	UpdateWorkspace:       "update/workspace",
	DeleteWorkspace:       "delete/workspace",
	GetWorkspaceWorkloads: "get/workspace-workloads",

	GetUsers:   "get/users",
	CreateUser: "create/user",
	GetUser:    "get/user",
	UpdateUser: "update/user",
	DeleteUser: "delete/user",

	GetTeams:   "get/teams",
	CreateTeam: "create/team",
	GetTeam:    "get/team",
	UpdateTeam: "update/team",
	DeleteTeam: "delete/team",

	GetGrants:   "get/grants",
	CreateGrant: "create/grant",
	GetGrant:    "get/grant",
	UpdateGrant: "update/grant",
	DeleteGrant: "delete/grant",

	StorageCreateVolume:   "storage/create-volume",
	StorageDeleteVolume:   "storage/delete-volume",
	StorageStats:          "storage/stats",
	StorageNamespaceStats: "storage/namespace/stats",
	StorageStatus:         "storage/status",

	ExternalSecretStoreCreate:          "external-secret-store/create",
	ExternalSecretStoreList:            "external-secret-store/list",
	ExternalSecretListAvailableSecrets: "external-secret/list-available-secrets",
	ExternalSecretStoreDelete:          "external-secret-store/delete",

	AttachLabeledNetworkPolicy:       "attach/labeled_network_policy",
	DetachLabeledNetworkPolicy:       "detach/labeled_network_policy",
	ListLabeledNetworkPolicyPorts:    "list/labeled_network_policy_ports",
	ListConflictingNetworkPolicies:   "list/conflicting_network_policies",
	RemoveConflictingNetworkPolicies: "remove/conflicting_network_policies",
	ListControllerNetworkPolicies:    "list/controller_network_policies",
	UpdateNetworkPoliciesTemplate:    "update/network_policies_template",
	ListAllNetworkPolicies:           "list/all_network_policies",
	ListNamespaceNetworkPolicies:     "list/namespace_network_policies",
	EnforceNetworkPolicyManager:      "enforce/network_policy_manager",
	DisableNetworkPolicyManager:      "disable/network_policy_manager",
	RemoveUnmanagedNetworkPolicies:   "remove/unmanaged_network_policies",
	ListOnlyNamespaceNetworkPolicies: "list/only_namespace_network_policies",

	ListCronjobJobs: "list/cronjob-jobs",

	LiveStreamNodesTraffic: "live-stream/nodes-traffic",
	LiveStreamNodesMemory:  "live-stream/nodes-memory",
	LiveStreamNodesCpu:     "live-stream/nodes-cpu",

	PrometheusQuery:        "prometheus/query",
	PrometheusIsReachable:  "prometheus/is-reachable",
	PrometheusValues:       "prometheus/values",
	PrometheusChartsAdd:    "prometheus/charts/add",
	PrometheusChartsRemove: "prometheus/charts/remove",
	PrometheusChartsGet:    "prometheus/charts/get",
	PrometheusChartsList:   "prometheus/charts/list",

	AuditLogList: "audit-log/list",
}
