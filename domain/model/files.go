package model

// PersistentFileRequest addresses a path inside a persistent volume.
type PersistentFileRequest struct {
	Path            string `json:"path" validate:"required"`
	VolumeNamespace string `json:"volumeNamespace" validate:"required,dns1123label"`
	VolumeName      string `json:"volumeName" validate:"required"`
}

type PersistentFile struct {
	Name         string `json:"name"`
	Type         string `json:"type"` // directory | file
	RelativePath string `json:"relativePath"`
	Extension    string `json:"extension,omitempty"`
	SizeInBytes  int64  `json:"sizeInBytes"`
	Size         string `json:"size"`
	Hash         string `json:"hash"`
	MimeType     string `json:"mimeType,omitempty"`
	ContentType  string `json:"contentType,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	ModifiedAt   string `json:"modifiedAt,omitempty"`
	UidGid       string `json:"uid_gid,omitempty"`
	Mode         string `json:"mode,omitempty"`
}

type FolderRequest struct {
	Folder PersistentFileRequest `json:"folder" validate:"required"`
}

type FileRequest struct {
	File PersistentFileRequest `json:"file" validate:"required"`
}

type FileRenameRequest struct {
	File    PersistentFileRequest `json:"file" validate:"required"`
	NewName string                `json:"newName" validate:"required"`
}

type FileChownRequest struct {
	File PersistentFileRequest `json:"file" validate:"required"`
	Uid  string                `json:"uid" validate:"required"`
	Gid  string                `json:"gid" validate:"required"`
}

type FileChmodRequest struct {
	File PersistentFileRequest `json:"file" validate:"required"`
	Mode string                `json:"mode" validate:"required"`
}

type FileDownloadRequest struct {
	File   PersistentFileRequest `json:"file" validate:"required"`
	PostTo string                `json:"postTo" validate:"required,url"`
}
