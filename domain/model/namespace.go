package model

import (
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
)

type Project struct {
	ID                    string  `json:"id" validate:"required"`
	DisplayName           string  `json:"displayName" validate:"required"`
	Name                  string  `json:"name" validate:"required"`
	GitAccessToken        *string `json:"gitAccessToken"`
	GitUserID             *string `json:"gitUserId"`
	GitConnectionType     *string `json:"gitConnectionType"`
	ClusterID             string  `json:"clusterId" validate:"required"`
	ClusterDisplayName    string  `json:"clusterDisplayName" validate:"required"`
	ClusterMfaID          string  `json:"clusterMfaId" validate:"required"`
	ContainerRegistryPath *string `json:"containerRegistryPath"`
	ContainerRegistryURL  *string `json:"containerRegistryUrl"`
	ContainerRegistryUser *string `json:"containerRegistryUser"`
	ContainerRegistryPat  *string `json:"containerRegistryPat"`
}

type Namespace struct {
	ID          string `json:"id" validate:"required"`
	DisplayName string `json:"displayName" validate:"required"`
	Name        string `json:"name" validate:"required,dns1123label"`
}

// NamespaceProjectRequest is shared by namespace create and delete.
type NamespaceProjectRequest struct {
	Project   Project   `json:"project" validate:"required"`
	Namespace Namespace `json:"namespace" validate:"required"`
}

type NamespaceShutdownRequest struct {
	ProjectID string            `json:"projectId" validate:"required"`
	Namespace Namespace         `json:"namespace" validate:"required"`
	Service   ServiceDefinition `json:"service" validate:"required"`
}

type NamespaceValidateClusterPodsRequest struct {
	DbPodNames []string `json:"dbPodNames" validate:"required"`
}

type ValidateClusterPodsResult struct {
	InDbButNotInCluster []string `json:"inDbButNotInCluster"`
	InClusterButNotInDb []string `json:"inClusterButNotInDb"`
}

type NamespaceServicePort struct {
	ExternalPort int    `json:"externalPort" validate:"required,gte=1,lte=65535"`
	PortType     string `json:"portType" validate:"required,oneof=TCP UDP HTTPS"`
	NamespaceID  string `json:"namespaceId"`
	ServiceID    string `json:"serviceId"`
}

type NamespaceValidatePortsRequest struct {
	Ports []NamespaceServicePort `json:"ports" validate:"required,dive"`
}

type NamespaceRestoreRequest struct {
	NamespaceName string `json:"namespaceName" validate:"required,dns1123label"`
	YamlData      string `json:"yamlData" validate:"required"`
}

type NamespaceResourceYamlRequest struct {
	NamespaceName string   `json:"namespaceName" validate:"required,dns1123label"`
	Resources     []string `json:"resources" validate:"required"`
}

type NamespaceResources struct {
	Pods        []corev1.Pod           `json:"pods"`
	Services    []corev1.Service       `json:"services"`
	Deployments []appsv1.Deployment    `json:"deployments"`
	Daemonsets  []appsv1.DaemonSet     `json:"daemonsets"`
	Replicasets []appsv1.ReplicaSet    `json:"replicasets"`
	Ingresses   []networkingv1.Ingress `json:"ingresses"`
	Secrets     []corev1.Secret        `json:"secrets"`
	Configmaps  []corev1.ConfigMap     `json:"configmaps"`
}

type NamespaceBackupResponse struct {
	NamespaceName string   `json:"namespaceName"`
	Data          string   `json:"data"`
	Messages      []string `json:"messages"`
}

type NamespaceRestoreResponse struct {
	NamespaceName string   `json:"namespaceName"`
	Messages      []string `json:"messages"`
}
