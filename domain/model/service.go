package model

import "time"

type ServicePort struct {
	PortType     string `json:"portType" validate:"required,oneof=TCP UDP HTTPS"`
	InternalPort int    `json:"internalPort" validate:"gte=0,lte=65535"`
	ExternalPort int    `json:"externalPort" validate:"gte=0,lte=65535"`
	Expose       bool   `json:"expose"`
}

type CronJobSettings struct {
	Schedule              string `json:"schedule" validate:"required"`
	ActiveDeadlineSeconds int64  `json:"activeDeadlineSeconds"`
	BackoffLimit          int32  `json:"backoffLimit"`
}

type HpaSettings struct {
	MinReplicas              int32 `json:"minReplicas"`
	MaxReplicas              int32 `json:"maxReplicas"`
	AverageCpuUtilization    int32 `json:"avgCpu"`
	AverageMemoryUtilization int32 `json:"avgMemory"`
}

type Container struct {
	Name               string            `json:"name" validate:"required"`
	Type               string            `json:"type"` // IMAGE | GIT_REPOSITORY
	ContainerImage     *string           `json:"containerImage,omitempty"`
	Env                map[string]string `json:"env,omitempty"`
	Command            *string           `json:"command,omitempty"`
	Args               *string           `json:"args,omitempty"`
	CpuLimit           float64           `json:"cpuLimit"`
	MemoryLimitMB      int               `json:"memoryLimitMB"`
	EphemeralStorageMB int               `json:"ephemeralStorageMB"`
}

// ServiceDefinition describes a managed service and its controller.
type ServiceDefinition struct {
	ID                 string           `json:"id" validate:"required"`
	DisplayName        string           `json:"displayName" validate:"required"`
	ControllerName     string           `json:"controllerName"`
	Controller         string           `json:"controller" validate:"omitempty,oneof=Deployment CronJob Job"`
	ReplicaCount       int              `json:"replicaCount"`
	DeploymentStrategy string           `json:"deploymentStrategy" validate:"omitempty,oneof=recreate rolling"`
	Ports              []ServicePort    `json:"ports" validate:"dive"`
	CronJobSettings    *CronJobSettings `json:"cronJobSettings"`
	HpaSettings        *HpaSettings     `json:"hpaSettings,omitempty"`
	Containers         []Container      `json:"containers" validate:"dive"`
}

// ServiceRequest is shared by create, update, delete, restart, start and stop.
type ServiceRequest struct {
	Project   Project           `json:"project" validate:"required"`
	Namespace Namespace         `json:"namespace" validate:"required"`
	Service   ServiceDefinition `json:"service" validate:"required"`
}

type ServicePodIdsRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	ServiceID string `json:"serviceId" validate:"required"`
}

type ServicePodExistsRequest struct {
	K8sNamespace string `json:"k8sNamespace" validate:"required,dns1123label"`
	K8sPod       string `json:"k8sPod" validate:"required"`
}

type ServicePodExistsResult struct {
	PodExists bool `json:"podExists"`
}

type ServicePodsRequest struct {
	Namespace      string `json:"namespace" validate:"required,dns1123label"`
	ControllerName string `json:"controllerName" validate:"required"`
}

type ServiceGetLogRequest struct {
	Namespace string     `json:"namespace" validate:"required,dns1123label"`
	PodID     string     `json:"podId" validate:"required"`
	Timestamp *time.Time `json:"timestamp"`
}

type ServiceGetLogResult struct {
	Namespace       string    `json:"namespace"`
	PodID           string    `json:"podId"`
	ServerTimestamp time.Time `json:"serverTimestamp"`
	Log             string    `json:"log"`
}

type ServiceGetLogErrorResult struct {
	Namespace string `json:"namespace"`
	PodID     string `json:"podId"`
	Restarts  int32  `json:"restarts"`
	Log       string `json:"log"`
}

type ServiceResourceStatusRequest struct {
	Resource   string `json:"resource" validate:"required,oneof=pods services deployments"`
	Namespace  string `json:"namespace" validate:"required,dns1123label"`
	Name       string `json:"name" validate:"required"`
	StatusOnly bool   `json:"statusOnly"`
}

type ServiceTriggerJobRequest struct {
	ProjectID            string `json:"projectId" validate:"required"`
	NamespaceName        string `json:"namespaceName" validate:"required,dns1123label"`
	NamespaceDisplayName string `json:"namespaceDisplayName" validate:"required"`
	NamespaceID          string `json:"namespaceId" validate:"required"`
	ControllerName       string `json:"controllerName" validate:"required"`
	ServiceID            string `json:"serviceId" validate:"required"`
}

type ServiceStatusRequest struct {
	Namespace      string `json:"namespace" validate:"required,dns1123label"`
	ControllerName string `json:"controllerName" validate:"required"`
	Controller     string `json:"controller" validate:"required"`
	GitRepository  bool   `json:"gitRepository"`
}

type ServiceStatusItem struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	OwnerName *string `json:"ownerName,omitempty"`
	OwnerKind *string `json:"ownerKind,omitempty"`
	Status    string  `json:"status"`
	Message   *string `json:"message,omitempty"`
}

type ServiceStatusMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type ServiceStatusResponse struct {
	Items         []ServiceStatusItem    `json:"items"`
	SwitchedOn    bool                   `json:"switchedOn"`
	HasPods       bool                   `json:"hasPods"`
	HasContainers bool                   `json:"hasContainers"`
	HasDeployment bool                   `json:"hasDeployment"`
	HasCronJob    bool                   `json:"hasCronJob"`
	HasJob        bool                   `json:"hasJob"`
	Warnings      []ServiceStatusMessage `json:"warnings,omitempty"`
}

type ServiceLogStreamRequest struct {
	Namespace    string `json:"namespace" validate:"required,dns1123label"`
	PodID        string `json:"podId" validate:"required"`
	SinceSeconds int    `json:"sinceSeconds" validate:"required"`
	PostTo       string `json:"postTo" validate:"required,url"`
}

type ServiceLogStreamResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
