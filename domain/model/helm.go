package model

import "helm.sh/helm/v3/pkg/release"

type HelmRepoAddRequest struct {
	Name                  string `json:"name" validate:"required"`
	URL                   string `json:"url" validate:"required,url"`
	Username              string `json:"username,omitempty"`
	Password              string `json:"password,omitempty"`
	InsecureSkipTLSverify bool   `json:"insecureSkipTLSverify,omitempty"`
	PassCredentialsAll    bool   `json:"passCredentialsAll,omitempty"`
}

type HelmRepoPatchRequest struct {
	Name                  string `json:"name" validate:"required"`
	NewName               string `json:"newName" validate:"required"`
	URL                   string `json:"url" validate:"required,url"`
	Username              string `json:"username,omitempty"`
	Password              string `json:"password,omitempty"`
	InsecureSkipTLSverify bool   `json:"insecureSkipTLSverify,omitempty"`
	PassCredentialsAll    bool   `json:"passCredentialsAll,omitempty"`
}

type HelmRepoRemoveRequest struct {
	Name string `json:"name" validate:"required"`
}

type HelmChartSearchRequest struct {
	Name string `json:"name,omitempty"`
}

type HelmChartInstallUpgradeRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Chart     string `json:"chart" validate:"required"`
	Release   string `json:"release" validate:"required"`
	Version   string `json:"version,omitempty"`
	Values    string `json:"values,omitempty"`
	DryRun    bool   `json:"dryRun,omitempty"`
}

type HelmChartShowRequest struct {
	Chart   string `json:"chart" validate:"required"`
	Format  string `json:"format,omitempty" validate:"omitempty,oneof=all chart values readme crds"`
	Version string `json:"version,omitempty"`
}

type HelmChartVersionRequest struct {
	Chart string `json:"chart" validate:"required"`
}

type HelmReleaseUninstallRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Release   string `json:"release" validate:"required"`
	DryRun    bool   `json:"dryRun,omitempty"`
}

type HelmReleaseListRequest struct {
	Namespace string `json:"namespace,omitempty"`
}

type HelmReleaseRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Release   string `json:"release" validate:"required"`
}

type HelmReleaseRollbackRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Release   string `json:"release" validate:"required"`
	Revision  int    `json:"revision" validate:"gte=0"`
}

type HelmReleaseGetRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Release   string `json:"release" validate:"required"`
	GetFormat string `json:"getFormat" validate:"required,oneof=all hooks manifest notes values"`
}

type HelmReleaseGetWorkloadsRequest struct {
	Namespace string                `json:"namespace" validate:"required,dns1123label"`
	Release   string                `json:"release" validate:"required"`
	Whitelist []*ResourceDescriptor `json:"whitelist"`
}

type HelmEntryWithoutPassword struct {
	Name                  string `json:"name"`
	URL                   string `json:"url"`
	InsecureSkipTLSverify bool   `json:"insecure_skip_tls_verify"`
	PassCredentialsAll    bool   `json:"pass_credentials_all"`
}

type HelmEntryStatus struct {
	Entry   *HelmEntryWithoutPassword `json:"entry"`
	Status  string                    `json:"status"` // success | error
	Message string                    `json:"message"`
}

type HelmChartInfo struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	AppVersion  string `json:"app_version"`
	Description string `json:"description"`
}

type HelmReleaseStatusInfo struct {
	Name         string         `json:"name"`
	LastDeployed string         `json:"lastDeployed"`
	Namespace    string         `json:"namespace"`
	Status       release.Status `json:"status"`
	Version      int            `json:"version"`
	Chart        string         `json:"chart"`
}

// NewHelmReleaseStatusInfo condenses a helm release into its status summary.
func NewHelmReleaseStatusInfo(r *release.Release) *HelmReleaseStatusInfo {
	if r == nil {
		return nil
	}
	info := &HelmReleaseStatusInfo{
		Name:      r.Name,
		Namespace: r.Namespace,
		Version:   r.Version,
	}
	if r.Info != nil {
		info.Status = r.Info.Status
		if !r.Info.LastDeployed.IsZero() {
			info.LastDeployed = r.Info.LastDeployed.String()
		}
	}
	if r.Chart != nil && r.Chart.Metadata != nil {
		info.Chart = r.Chart.Metadata.Name + "-" + r.Chart.Metadata.Version
	}
	return info
}
