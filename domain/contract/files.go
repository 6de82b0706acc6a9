package contract

import (
	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	FilesList         = define[model.FolderRequest, []model.PersistentFile](pattern.FilesList)
	FilesCreateFolder = define[model.FolderRequest, Void](pattern.FilesCreateFolder)
	FilesRename       = define[model.FileRenameRequest, Void](pattern.FilesRename)
	FilesChown        = define[model.FileChownRequest, Void](pattern.FilesChown)
	FilesChmod        = define[model.FileChmodRequest, Void](pattern.FilesChmod)
	FilesDelete       = define[model.FileRequest, Void](pattern.FilesDelete)
	FilesDownload     = define[model.FileDownloadRequest, Void](pattern.FilesDownload)
	FilesInfo         = define[model.PersistentFileRequest, model.PersistentFile](pattern.FilesInfo)
)
