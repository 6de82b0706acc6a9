package model

type VolumeRequest struct {
	NamespaceName string `json:"namespaceName" validate:"required,dns1123label"`
	VolumeName    string `json:"volumeName" validate:"required"`
	SizeInGb      int    `json:"sizeInGb" validate:"required,gte=1"`
}

type VolumeStatsRequest struct {
	NamespaceName string `json:"namespaceName" validate:"required,dns1123label"`
	VolumeName    string `json:"volumeName" validate:"required"`
}

type VolumeStats struct {
	VolumeName string `json:"volumeName"`
	TotalBytes uint64 `json:"totalBytes"`
	FreeBytes  uint64 `json:"freeBytes"`
	UsedBytes  uint64 `json:"usedBytes"`
}

type VolumeStatusRequest struct {
	Name             string `json:"name" validate:"required"`
	Namespace        string `json:"namespace"`
	StorageAPIObject string `json:"type" validate:"required,oneof=PersistentVolume PersistentVolumeClaim"`
}

type VolumeStatusType string

const (
	VolumeStatusBound   VolumeStatusType = "Bound"
	VolumeStatusPending VolumeStatusType = "Pending"
	VolumeStatusError   VolumeStatusType = "Error"
	VolumeStatusUnused  VolumeStatusType = "Unused"
)

type VolumeStatusMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type VolumeStatus struct {
	VolumeName    string                `json:"volumeName"`
	NamespaceName string                `json:"namespaceName"`
	TotalBytes    uint64                `json:"totalBytes"`
	FreeBytes     uint64                `json:"freeBytes"`
	UsedBytes     uint64                `json:"usedBytes"`
	Status        VolumeStatusType      `json:"status"`
	Messages      []VolumeStatusMessage `json:"messages,omitempty"`
	UsedByPods    []string              `json:"usedByPods,omitempty"`
}
