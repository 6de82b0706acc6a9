package model

import (
	"time"

	"github.com/kompox/patternapi/domain/schema"
	"helm.sh/helm/v3/pkg/release"
)

// PatternConfig is the published description of a single pattern contract.
type PatternConfig struct {
	RequestSchema     *schema.Schema `json:"requestSchema,omitempty"`
	ResponseSchema    *schema.Schema `json:"responseSchema,omitempty"`
	Deprecated        bool           `json:"deprecated,omitempty"`
	DeprecatedMessage string         `json:"deprecatedMessage,omitempty"`
}

type BuildInfo struct {
	BuildType string `json:"buildType"`
	Version   string `json:"version,omitempty"`
}

type DescribeResponse struct {
	BuildInfo BuildInfo                `json:"buildInfo,omitempty"`
	Features  map[string]bool          `json:"features,omitempty"`
	Patterns  map[string]PatternConfig `json:"patterns,omitempty"`
}

type ClusterStatus struct {
	ClusterName                  string          `json:"clusterName"`
	Pods                         int             `json:"pods"`
	PodCpuUsageInMilliCores      int             `json:"podCpuUsageInMilliCores"`
	PodCpuLimitInMilliCores      int             `json:"podCpuLimitInMilliCores"`
	PodMemoryUsageInBytes        int64           `json:"podMemoryUsageInBytes"`
	PodMemoryLimitInBytes        int64           `json:"podMemoryLimitInBytes"`
	EphemeralStorageLimitInBytes int64           `json:"ephemeralStorageLimitInBytes"`
	CurrentTime                  string          `json:"currentTime"`
	KubernetesVersion            string          `json:"kubernetesVersion"`
	Platform                     string          `json:"platform"`
	Country                      *CountryDetails `json:"country"`
}

type NodeStat struct {
	Name                   string `json:"name"`
	MaschineId             string `json:"maschineId"`
	CpuInCores             int64  `json:"cpuInCores"`
	CpuInCoresUtilized     int64  `json:"cpuInCoresUtilized"`
	CpuInCoresRequested    int64  `json:"cpuInCoresRequested"`
	CpuInCoresLimited      int64  `json:"cpuInCoresLimited"`
	MemoryInBytes          int64  `json:"memoryInBytes"`
	MemoryInBytesUtilized  int64  `json:"memoryInBytesUtilized"`
	MemoryInBytesRequested int64  `json:"memoryInBytesRequested"`
	MemoryInBytesLimited   int64  `json:"memoryInBytesLimited"`
	EphemeralInBytes       int64  `json:"ephemeralInBytes"`
	MaxPods                int64  `json:"maxPods"`
	TotalPods              int64  `json:"totalPods"`
	KubletVersion          string `json:"kubletVersion"`
	OsType                 string `json:"osType"`
	OsImage                string `json:"osImage"`
	Architecture           string `json:"architecture"`
}

type CniData struct {
	Node         string   `json:"node"`
	Name         string   `json:"name"`
	CNIVersion   string   `json:"cniVersion"`
	Plugins      []string `json:"plugins"`
	Capabilities []string `json:"capabilities"`
}

type ClusterResourceInfo struct {
	LoadBalancerExternalIps []string        `json:"loadBalancerExternalIps"`
	NodeStats               []NodeStat      `json:"nodeStats"`
	Country                 *CountryDetails `json:"country"`
	Provider                string          `json:"provider"`
	CniConfig               []CniData       `json:"cniConfig"`
}

type UpgradeK8sManagerRequest struct {
	// Command is the complete helm command issued by the platform UI.
	Command string `json:"command" validate:"required"`
}

type SystemCheckEntry struct {
	CheckName          string         `json:"checkName"`
	HelmStatus         release.Status `json:"helmStatus"`
	IsRunning          bool           `json:"isRunning"`
	SuccessMessage     string         `json:"successMessage"`
	ErrorMessage       *string        `json:"errorMessage,omitempty"`
	SolutionMessage    string         `json:"solutionMessage"`
	Description        string         `json:"description"`
	InstallPattern     string         `json:"installPattern"`
	UpgradePattern     string         `json:"upgradePattern"`
	UninstallPattern   string         `json:"uninstallPattern"`
	IsRequired         bool           `json:"isRequired"`
	WantsToBeInstalled bool           `json:"wantsToBeInstalled"`
	VersionInstalled   string         `json:"versionInstalled"`
	VersionAvailable   string         `json:"versionAvailable"`
	ProcessTimeInMs    int64          `json:"processTimeInMs"`
}

type SystemCheckResponse struct {
	TerminalString string             `json:"terminalString"`
	Entries        []SystemCheckEntry `json:"entries"`
}

type EnergyConsumption struct {
	Node          string    `json:"node"`
	Source        string    `json:"source"`
	WattsCurrent  float64   `json:"wattsCurrent"`
	WattsAverage  float64   `json:"wattsAverage"`
	KwhTotal      float64   `json:"kwhTotal"`
	MeasuredSince time.Time `json:"measuredSince"`
}

type InstallClusterIssuerRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MachineStatsRequest struct {
	Nodes []string `json:"nodes" validate:"required"`
}

type MachineStats struct {
	BtfSupport bool `json:"btfSupport"`
}

type TcpUdpClusterConfiguration struct {
	IngressServices []string          `json:"ingressServices"`
	TcpServices     map[string]string `json:"tcpServices"`
	UdpServices     map[string]string `json:"udpServices"`
}

type ClusterHelmRequest struct {
	Namespace        string `json:"namespace" validate:"required,dns1123label"`
	NamespaceID      string `json:"namespaceId" validate:"required"`
	HelmRepoName     string `json:"helmRepoName" validate:"required"`
	HelmRepoURL      string `json:"helmRepoUrl" validate:"required,url"`
	HelmReleaseName  string `json:"helmReleaseName" validate:"required"`
	HelmChartName    string `json:"helmChartName" validate:"required"`
	HelmChartVersion string `json:"helmChartVersion"`
	HelmValues       string `json:"helmValues" validate:"required"`
}

type ClusterHelmUninstallRequest struct {
	NamespaceID     string `json:"namespaceId" validate:"required"`
	HelmReleaseName string `json:"helmReleaseName" validate:"required"`
}

type ClusterWriteConfigMapRequest struct {
	Namespace string            `json:"namespace" validate:"required,dns1123label"`
	Name      string            `json:"name" validate:"required"`
	Labels    map[string]string `json:"labels" validate:"required"`
	Data      string            `json:"data" validate:"required"`
}

type ClusterListWorkloadsRequest struct {
	Namespace     string `json:"namespace"`
	LabelSelector string `json:"labelSelector"`
	Prefix        string `json:"prefix"`
}

type ClusterUpdateLocalTlsSecretRequest struct {
	LocalTlsCrt string `json:"localTlsCrt" validate:"required"`
	LocalTlsKey string `json:"localTlsKey" validate:"required"`
}
