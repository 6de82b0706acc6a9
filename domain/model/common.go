package model

// K8sController identifies a workload controller.
type K8sController struct {
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	Namespace string `json:"namespace"`
}

type NameRequest struct {
	Name string `json:"name" validate:"required"`
}

type NamespaceRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
}

type NamespaceNameRequest struct {
	NamespaceName string `json:"namespaceName" validate:"required,dns1123label"`
}

type NamespacedNameRequest struct {
	Namespace string `json:"namespace" validate:"required,dns1123label"`
	Name      string `json:"name" validate:"required,dns1123subdomain"`
}

// ResourceDescriptor names a Kubernetes resource kind.
type ResourceDescriptor struct {
	Kind       string `json:"kind"`
	APIVersion string `json:"apiVersion"`
	Plural     string `json:"plural"`
	Namespaced bool   `json:"namespaced"`
}

type SyncResourceEntry struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Group     string  `json:"group"`
	Version   string  `json:"version"`
	Namespace *string `json:"namespace"`
}

type SyncResourceItem struct {
	Kind         string `json:"kind"`
	Name         string `json:"name"`
	Group        string `json:"group"`
	Version      string `json:"version"`
	ResourceName string `json:"resourceName"`
	Namespace    string `json:"namespace"`
}

type SyncResourceData struct {
	Kind      string  `json:"kind"`
	Name      string  `json:"name"`
	Group     string  `json:"group"`
	Version   string  `json:"version"`
	Namespace *string `json:"namespace"`
	YamlData  string  `json:"yamlData"`
}

// WorkloadResult wraps a raw Kubernetes read or list result.
type WorkloadResult struct {
	Result any     `json:"result"`
	Error  *string `json:"error"`
}

type CountryDetails struct {
	Code          string  `json:"code"`
	Code3         string  `json:"code3"`
	IsEuMember    bool    `json:"isEuMember"`
	CurrencyCode  string  `json:"currency"`
	PhoneNumber   string  `json:"phoneNumberPrefix"`
	Name          string  `json:"name"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	IsoCodeDomain string  `json:"domainTld"`
}
