package model

import "time"

// JobState is the lifecycle state of a Job or one of its Commands.
type JobState string

const (
	JobStateFailed    JobState = "FAILED"
	JobStateSucceeded JobState = "SUCCEEDED"
	JobStateStarted   JobState = "STARTED"
	JobStatePending   JobState = "PENDING"
	JobStateCanceled  JobState = "CANCELED"
	JobStateTimeout   JobState = "TIMEOUT"
)

// Job is the asynchronous work item returned by mutating cluster operations.
type Job struct {
	ID             string     `json:"id"`
	ProjectID      string     `json:"projectId"`
	NamespaceName  string     `json:"namespaceName"`
	ControllerName string     `json:"controllerName"`
	Title          string     `json:"title"`
	Message        string     `json:"message"`
	Commands       []*Command `json:"commands"`
	State          JobState   `json:"state"`
	Started        time.Time  `json:"started"`
	Finished       time.Time  `json:"finished"`
	ContainerName  string     `json:"containerName,omitempty"`
}

type Command struct {
	ID       string    `json:"id"`
	Command  string    `json:"command"`
	Title    string    `json:"title"`
	Message  string    `json:"message,omitempty"`
	State    JobState  `json:"state"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`
}

// DefaultResponse is the generic success/error body used by storage operations.
type DefaultResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
