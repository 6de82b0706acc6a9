package model

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

// WorkspaceResourceIdentifier binds a workspace to a namespace or helm release.
type WorkspaceResourceIdentifier struct {
	ID        string `json:"id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=namespace helm"`
	Namespace string `json:"namespace"`
}

type WorkspaceRequest struct {
	Name        string                        `json:"name" validate:"required"`
	DisplayName string                        `json:"displayName" validate:"required"`
	Resources   []WorkspaceResourceIdentifier `json:"resources" validate:"required,dive"`
}

type WorkspaceInfo struct {
	Name         string                        `json:"name"`
	DisplayName  string                        `json:"displayName"`
	Resources    []WorkspaceResourceIdentifier `json:"resources"`
	CreationTime metav1.Time                   `json:"creationTimestamp"`
}

type GetUsersRequest struct {
	Email *string `json:"email"`
}

type UserRequest struct {
	Name      string `json:"name" validate:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type UserSpec struct {
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email,omitempty"`
}

type User struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              UserSpec `json:"spec,omitempty"`
}

type TeamRequest struct {
	Name        string   `json:"name" validate:"required"`
	DisplayName string   `json:"displayName" validate:"required"`
	Users       []string `json:"users" validate:"required"`
}

type TeamSpec struct {
	DisplayName string   `json:"displayName,omitempty"`
	Users       []string `json:"users,omitempty"`
}

type Team struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              TeamSpec `json:"spec,omitempty"`
}

type GetGrantsRequest struct {
	TargetType *string `json:"targetType"`
	TargetName *string `json:"targetName"`
}

type GrantRequest struct {
	Name       string `json:"name" validate:"required"`
	Grantee    string `json:"grantee" validate:"required"`
	TargetType string `json:"targetType" validate:"required"`
	TargetName string `json:"targetName" validate:"required"`
	Role       string `json:"role" validate:"required"`
}

type GrantSpec struct {
	Grantee    string `json:"grantee,omitempty"`
	TargetType string `json:"targetType,omitempty"`
	TargetName string `json:"targetName,omitempty"`
	Role       string `json:"role,omitempty"`
}

type Grant struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`
	Spec              GrantSpec `json:"spec,omitempty"`
}
