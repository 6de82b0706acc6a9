package contract

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/kompox/patternapi/domain/model"
	"github.com/kompox/patternapi/domain/pattern"
)

var (
	ListAllWorkloads         = define[Empty, []model.SyncResourceEntry](pattern.ListAllWorkloads)
	GetWorkloadList          = define[model.SyncResourceEntry, unstructured.UnstructuredList](pattern.GetWorkloadList)
	GetNamespaceWorkloadList = define[model.NamespaceWorkloadListRequest, []unstructured.Unstructured](pattern.GetNamespaceWorkloadList)
	GetLabeledWorkloadList   = define[model.LabeledWorkloadListRequest, unstructured.UnstructuredList](pattern.GetLabeledWorkloadList)
	DescribeWorkload         = define[model.SyncResourceItem, string](pattern.DescribeWorkload)
	CreateNewWorkload        = define[model.SyncResourceData, unstructured.Unstructured](pattern.CreateNewWorkload)
	GetWorkload              = define[model.SyncResourceItem, unstructured.Unstructured](pattern.GetWorkload)
	GetWorkloadStatus        = define[model.WorkloadStatusRequest, []model.WorkloadStatus](pattern.GetWorkloadStatus)
	GetWorkloadExample       = define[model.SyncResourceItem, string](pattern.GetWorkloadExample)
	UpdateWorkload           = define[model.SyncResourceData, unstructured.Unstructured](pattern.UpdateWorkload)
	DeleteWorkload           = define[model.SyncResourceItem, Void](pattern.DeleteWorkload)
	TriggerWorkload          = define[model.SyncResourceItem, Void](pattern.TriggerWorkload)

	ListCronjobJobs = define[model.ListCronjobJobsRequest, []model.CronJobRun](pattern.ListCronjobJobs)
)

var (
	GetWorkspaces         = define[Empty, []model.WorkspaceInfo](pattern.GetWorkspaces)
	CreateWorkspace       = define[model.WorkspaceRequest, string](pattern.CreateWorkspace)
	GetWorkspace          = define[model.NameRequest, model.WorkspaceInfo](pattern.GetWorkspace)
	UpdateWorkspace       = define[model.WorkspaceRequest, string](pattern.UpdateWorkspace)
	DeleteWorkspace       = define[model.NameRequest, string](pattern.DeleteWorkspace)
	GetWorkspaceWorkloads = define[model.WorkspaceWorkloadsRequest, []unstructured.Unstructured](pattern.GetWorkspaceWorkloads)
)
