package model

// CreateSecretStoreRequest binds an external secret store to a project so
// that the owning team controls which secrets it can read.
type CreateSecretStoreRequest struct {
	DisplayName    string `json:"displayName" validate:"required"`
	ProjectID      string `json:"projectId" validate:"required"`
	Role           string `json:"role" validate:"required"`
	VaultServerURL string `json:"vaultServerUrl" validate:"required,url"`
	SecretPath     string `json:"secretPath" validate:"required"`
}

type SecretStoreResult struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"errorMessage"`
}

type ListSecretStoresRequest struct {
	ProjectID string `json:"projectId" validate:"required"`
}

type ListSecretsRequest struct {
	NamePrefix string `json:"namePrefix" validate:"required"`
}

type DeleteSecretStoreRequest struct {
	Name string `json:"name" validate:"required"`
}

type SecretStore struct {
	Name           string `json:"name"`
	DisplayName    string `json:"displayName"`
	ProjectID      string `json:"projectId"`
	Role           string `json:"role"`
	VaultServerURL string `json:"vaultServerUrl"`
	SecretPath     string `json:"secretPath"`
	Status         string `json:"status"`
}
