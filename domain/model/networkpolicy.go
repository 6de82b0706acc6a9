package model

import networkingv1 "k8s.io/api/networking/v1"

type LabeledNetworkPolicy struct {
	Name     string `json:"name" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=ingress egress"`
	Port     uint16 `json:"port"`
	PortType string `json:"portType" validate:"omitempty,oneof=TCP UDP SCTP"`
}

type LabeledNetworkPolicyRequest struct {
	ControllerName         string                 `json:"controllerName" validate:"required"`
	ControllerType         string                 `json:"controllerType" validate:"required,oneof=Deployment CronJob Job StatefulSet DaemonSet"`
	NamespaceName          string                 `json:"namespaceName" validate:"required,dns1123label"`
	LabeledNetworkPolicies []LabeledNetworkPolicy `json:"labeledNetworkPolicies" validate:"required,dive"`
}

type ControllerNetworkPoliciesRequest struct {
	ControllerName string `json:"controllerName" validate:"required"`
	ControllerType string `json:"controllerType" validate:"required"`
	NamespaceName  string `json:"namespaceName" validate:"required,dns1123label"`
}

type ControllerNetworkPolicies struct {
	ControllerName         string                 `json:"controllerName"`
	ControllerType         string                 `json:"controllerType"`
	NamespaceName          string                 `json:"namespaceName"`
	LabeledNetworkPolicies []LabeledNetworkPolicy `json:"labeledNetworkPolicies"`
}

type ConflictingNetworkPolicy struct {
	Name      string                         `json:"name"`
	Namespace string                         `json:"namespace"`
	Spec      networkingv1.NetworkPolicySpec `json:"spec"`
}

type ManagedNetworkPolicy struct {
	Name       string                         `json:"name"`
	Namespace  string                         `json:"namespace"`
	Controller *string                        `json:"controller,omitempty"`
	Spec       networkingv1.NetworkPolicySpec `json:"spec"`
}

type NetworkPolicyController struct {
	ControllerName string                       `json:"controllerName"`
	ControllerType string                       `json:"controllerType"`
	Policies       []networkingv1.NetworkPolicy `json:"policies"`
}

type NetworkPolicyNamespace struct {
	ID                string                     `json:"id"`
	DisplayName       string                     `json:"displayName"`
	Name              string                     `json:"name"`
	ProjectID         string                     `json:"projectId"`
	Controllers       []NetworkPolicyController  `json:"controllers"`
	UnmanagedPolicies []ConflictingNetworkPolicy `json:"unmanagedPolicies"`
	ManagedPolicies   []ManagedNetworkPolicy     `json:"managedPolicies"`
}

type ManagedAndUnmanagedNetworkPolicyNamespace struct {
	ID                string                     `json:"id"`
	DisplayName       string                     `json:"displayName"`
	Name              string                     `json:"name"`
	ProjectID         string                     `json:"projectId"`
	UnmanagedPolicies []ConflictingNetworkPolicy `json:"unmanagedPolicies"`
	ManagedPolicies   []ManagedNetworkPolicy     `json:"managedPolicies"`
}

// NetworkPolicyTemplate is one entry of the cluster-wide policy template list.
type NetworkPolicyTemplate struct {
	Name     string `json:"name" validate:"required"`
	Protocol string `json:"protocol" validate:"required,oneof=TCP UDP SCTP"`
	Port     uint16 `json:"port" validate:"required"`
	Type     string `json:"type" validate:"required,oneof=ingress egress"`
}

type RemoveUnmanagedNetworkPoliciesRequest struct {
	Namespace string   `json:"namespaceName" validate:"required,dns1123label"`
	Policies  []string `json:"policies" validate:"required"`
}
