package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	StorageCreateVolume   = define[model.VolumeRequest, model.DefaultResponse](pattern.StorageCreateVolume)
	StorageDeleteVolume   = define[model.VolumeRequest, model.DefaultResponse](pattern.StorageDeleteVolume)
	StorageStats          = define[model.VolumeStatsRequest, model.VolumeStats](pattern.StorageStats)
	StorageNamespaceStats = define[model.NamespaceNameRequest, []model.VolumeStats](pattern.StorageNamespaceStats)
	StorageStatus         = define[model.VolumeStatusRequest, model.VolumeStatus](pattern.StorageStatus)
)

var (
	ExternalSecretStoreCreate          = define[model.CreateSecretStoreRequest, model.SecretStoreResult](pattern.ExternalSecretStoreCreate)
	ExternalSecretStoreList            = define[model.ListSecretStoresRequest, []model.SecretStore](pattern.ExternalSecretStoreList)
	ExternalSecretListAvailableSecrets = define[model.ListSecretsRequest, []string](pattern.ExternalSecretListAvailableSecrets)
	ExternalSecretStoreDelete          = define[model.DeleteSecretStoreRequest, model.SecretStoreResult](pattern.ExternalSecretStoreDelete)
)
