package model

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type ControllerStatsRequest struct {
	Kind              string `json:"kind"`
	Name              string `json:"name"`
	Namespace         string `json:"namespace"`
	TimeOffsetMinutes int    `json:"timeOffsetMinutes"`
}

type WorkspaceStatsRequest struct {
	WorkspaceName     string `json:"workspaceName"`
	TimeOffsetMinutes int    `json:"timeOffsetMinutes"`
}

type PodStats struct {
	Namespace        string    `json:"namespace"`
	PodName          string    `json:"podName"`
	Cpu              int64     `json:"cpu"`
	CpuLimit         int64     `json:"cpuLimit"`
	Memory           int64     `json:"memory"`
	MemoryLimit      int64     `json:"memoryLimit"`
	EphemeralStorage int64     `json:"ephemeralStorage"`
	StorageLimit     int64     `json:"storageLimit"`
	StartTime        string    `json:"startTime"`
	CreatedAt        time.Time `json:"createdAt"`
}

type PodNetworkStats struct {
	Pod                string    `json:"pod"`
	Namespace          string    `json:"namespace"`
	ReceivedPackets    uint64    `json:"receivedPackets"`
	ReceivedBytes      uint64    `json:"receivedBytes"`
	ReceivedStartBytes uint64    `json:"receivedStartBytes"`
	TransmitPackets    uint64    `json:"transmitPackets"`
	TransmitBytes      uint64    `json:"transmitBytes"`
	TransmitStartBytes uint64    `json:"transmitStartBytes"`
	CreatedAt          time.Time `json:"createdAt"`
}

type SocketConnections struct {
	LastUpdate  string            `json:"lastUpdate"`
	Connections map[string]uint64 `json:"connections"`
}

type GenericChartEntry struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

type PodMetrics struct {
	Name       string             `json:"name"`
	Containers []ContainerMetrics `json:"containers"`
}

type ContainerMetrics struct {
	Name        string `json:"name"`
	CpuMilli    int64  `json:"cpuMilli"`
	MemoryBytes int64  `json:"memoryBytes"`
}

type Metrics struct {
	Namespace                string       `json:"namespace"`
	Name                     string       `json:"name"`
	Kind                     string       `json:"kind"`
	PodsMetrics              []PodMetrics `json:"podsMetrics"`
	CpuAverageUtilization    int64        `json:"cpuAverageUtilization"`
	MemoryAverageUtilization int64        `json:"memoryAverageUtilization"`
	CreatedAt                metav1.Time  `json:"createdAt"`
	WindowInMs               int64        `json:"windowInMs"`
}
