package model

type NamespaceWorkloadListRequest struct {
	Namespace string                `json:"namespace" validate:"required,dns1123label"`
	Whitelist []*ResourceDescriptor `json:"whitelist"`
	Blacklist []*ResourceDescriptor `json:"blacklist"`
}

type LabeledWorkloadListRequest struct {
	Label     string                `json:"label" validate:"required"`
	Whitelist []*ResourceDescriptor `json:"whitelist"`
	Blacklist []*ResourceDescriptor `json:"blacklist"`
}

type WorkloadStatusHelmRelease struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Release   string `json:"release" validate:"required"`
}

type WorkloadStatusRequest struct {
	ResourceDescriptor       *ResourceDescriptor          `json:"resourceDescriptor,omitempty"`
	Namespaces               *[]string                    `json:"namespaces,omitempty"`
	HelmReleases             *[]WorkloadStatusHelmRelease `json:"helmReleases,omitempty"`
	ResourceNames            *[]string                    `json:"resourceNames,omitempty"`
	IgnoreDependentResources *bool                        `json:"ignoreDependentResources,omitempty"`
}

type WorkloadStatusItem struct {
	Kind       string         `json:"kind"`
	APIVersion string         `json:"apiVersion"`
	Name       string         `json:"name"`
	Namespace  string         `json:"namespace"`
	Status     map[string]any `json:"status,omitempty"`
	Events     []string       `json:"events,omitempty"`
}

type WorkloadStatus struct {
	Items []WorkloadStatusItem `json:"items"`
}

type WorkspaceWorkloadsRequest struct {
	WorkspaceName      string               `json:"workspaceName"`
	Whitelist          []*SyncResourceEntry `json:"whitelist"`
	Blacklist          []*SyncResourceEntry `json:"blacklist"`
	NamespaceWhitelist []string             `json:"namespaceWhitelist"`
}

type ListCronjobJobsRequest struct {
	ProjectID      string `json:"projectId" validate:"required"`
	NamespaceName  string `json:"namespaceName" validate:"required,dns1123label"`
	ControllerName string `json:"controllerName" validate:"required"`
}

type CronJobRun struct {
	JobName      string   `json:"jobName"`
	Status       string   `json:"status"` // Active | Succeeded | Failed
	StartTime    *string  `json:"startTime"`
	DurationInMs int64    `json:"durationInMs"`
	Pods         []string `json:"pods"`
}
