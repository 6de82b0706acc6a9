package contract

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	NamespaceCreate              = define[model.NamespaceProjectRequest, model.Job](pattern.NamespaceCreate)
	NamespaceDelete              = define[model.NamespaceProjectRequest, model.Job](pattern.NamespaceDelete)
	NamespaceShutdown            = define[model.NamespaceShutdownRequest, model.Job](pattern.NamespaceShutdown)
	NamespacePodIds              = define[model.NamespaceRequest, []string](pattern.NamespacePodIds)
	NamespaceValidateClusterPods = define[model.NamespaceValidateClusterPodsRequest, model.ValidateClusterPodsResult](pattern.NamespaceValidateClusterPods)
	NamespaceValidatePorts       = define[model.NamespaceValidatePortsRequest, Void](pattern.NamespaceValidatePorts)
	NamespaceListAll             = define[Empty, []string](pattern.NamespaceListAll)
	NamespaceGatherAllResources  = define[model.NamespaceNameRequest, model.NamespaceResources](pattern.NamespaceGatherAllResources)
	NamespaceBackup              = define[model.NamespaceNameRequest, model.NamespaceBackupResponse](pattern.NamespaceBackup)
	NamespaceRestore             = define[model.NamespaceRestoreRequest, model.NamespaceRestoreResponse](pattern.NamespaceRestore)
	NamespaceResourceYaml        = define[model.NamespaceResourceYamlRequest, string](pattern.NamespaceResourceYaml)
)

var (
	ServiceCreate         = define[model.ServiceRequest, model.Job](pattern.ServiceCreate)
	ServiceDelete         = define[model.ServiceRequest, model.Job](pattern.ServiceDelete)
	ServicePodIds         = define[model.ServicePodIdsRequest, []string](pattern.ServicePodIds)
	ServicePodExists      = define[model.ServicePodExistsRequest, model.ServicePodExistsResult](pattern.ServicePodExists)
	ServicePods           = define[model.ServicePodsRequest, []corev1.Pod](pattern.ServicePods)
	ServiceLog            = define[model.ServiceGetLogRequest, model.ServiceGetLogResult](pattern.ServiceLog)
	ServiceLogError       = define[model.ServiceGetLogRequest, model.ServiceGetLogErrorResult](pattern.ServiceLogError)
	ServiceResourceStatus = define[model.ServiceResourceStatusRequest, corev1.Pod](pattern.ServiceResourceStatus)
	ServiceRestart        = define[model.ServiceRequest, model.Job](pattern.ServiceRestart)
	ServiceStop           = define[model.ServiceRequest, model.Job](pattern.ServiceStop)
	ServiceStart          = define[model.ServiceRequest, model.Job](pattern.ServiceStart)
	ServiceUpdateService  = define[model.ServiceRequest, model.Job](pattern.ServiceUpdateService)
	ServiceTriggerJob     = define[model.ServiceTriggerJobRequest, model.Job](pattern.ServiceTriggerJob)
	ServiceStatus         = define[model.ServiceStatusRequest, model.ServiceStatusResponse](pattern.ServiceStatus)
	// log-stream pushes pod logs by HTTP POST to the caller's postTo URL. The
	// connection request streams the same logs over the socket side channel
	// and needs no inbound endpoint, so new clients should use it.
	ServiceLogStream      = define[model.ServiceLogStreamRequest, model.ServiceLogStreamResult](pattern.ServiceLogStream,
		deprecated("use service/log-stream-connection-request"))
)

// Connection requests only open a side channel.
var (
	ServiceExecShConnectionRequest             = define[model.PodCmdConnectionRequest, Void](pattern.ServiceExecShConnectionRequest, stream())
	ServiceLogStreamConnectionRequest          = define[model.PodCmdConnectionRequest, Void](pattern.ServiceLogStreamConnectionRequest, stream())
	ClusterComponentLogStreamConnectionRequest = define[model.ComponentLogConnectionRequest, Void](pattern.ClusterComponentLogStreamConnectionRequest, stream())
	ServicePodEventStreamConnectionRequest     = define[model.PodEventConnectionRequest, Void](pattern.ServicePodEventStreamConnectionRequest, stream())
	ServiceClusterToolStreamConnectionRequest  = define[model.ClusterToolConnectionRequest, Void](pattern.ServiceClusterToolStreamConnectionRequest, stream())

	LiveStreamNodesTraffic = define[model.WsConnectionRequest, Void](pattern.LiveStreamNodesTraffic, stream())
	LiveStreamNodesMemory  = define[model.WsConnectionRequest, Void](pattern.LiveStreamNodesMemory, stream())
	LiveStreamNodesCpu     = define[model.WsConnectionRequest, Void](pattern.LiveStreamNodesCpu, stream())
)
