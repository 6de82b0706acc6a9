package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	AttachLabeledNetworkPolicy       = define[model.LabeledNetworkPolicyRequest, string](pattern.AttachLabeledNetworkPolicy)
	DetachLabeledNetworkPolicy       = define[model.LabeledNetworkPolicyRequest, string](pattern.DetachLabeledNetworkPolicy)
	ListLabeledNetworkPolicyPorts    = define[Empty, []model.LabeledNetworkPolicy](pattern.ListLabeledNetworkPolicyPorts)
	ListConflictingNetworkPolicies   = define[model.NamespaceNameRequest, []model.ConflictingNetworkPolicy](pattern.ListConflictingNetworkPolicies)
	RemoveConflictingNetworkPolicies = define[model.NamespaceNameRequest, string](pattern.RemoveConflictingNetworkPolicies)
	ListControllerNetworkPolicies    = define[model.ControllerNetworkPoliciesRequest, model.ControllerNetworkPolicies](pattern.ListControllerNetworkPolicies)
	UpdateNetworkPoliciesTemplate    = define[[]model.NetworkPolicyTemplate, Void](pattern.UpdateNetworkPoliciesTemplate)
	ListAllNetworkPolicies           = define[Empty, []model.NetworkPolicyNamespace](pattern.ListAllNetworkPolicies)
	ListNamespaceNetworkPolicies     = define[model.NamespaceNameRequest, []model.NetworkPolicyNamespace](pattern.ListNamespaceNetworkPolicies)
	EnforceNetworkPolicyManager      = define[model.NamespaceNameRequest, Void](pattern.EnforceNetworkPolicyManager)
	DisableNetworkPolicyManager      = define[model.NamespaceNameRequest, Void](pattern.DisableNetworkPolicyManager)
	RemoveUnmanagedNetworkPolicies   = define[model.RemoveUnmanagedNetworkPoliciesRequest, Void](pattern.RemoveUnmanagedNetworkPolicies)
	ListOnlyNamespaceNetworkPolicies = define[model.NamespaceNameRequest, []model.ManagedAndUnmanagedNetworkPolicyNamespace](pattern.ListOnlyNamespaceNetworkPolicies)
)
