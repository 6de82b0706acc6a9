package model

// WsConnectionRequest tells the executor where to open the side channel
// carrying a long-lived stream. The stream itself never travels in the
// response envelope.
type WsConnectionRequest struct {
	ChannelID       string `json:"channelId" validate:"required"`
	WebsocketScheme string `json:"websocketScheme" validate:"required,oneof=ws wss"`
	WebsocketHost   string `json:"websocketHost" validate:"required"`
	NodeName        string `json:"nodeName"`
	CmdType         string `json:"cmdType"`
	PodName         string `json:"podName"`
	Workspace       string `json:"workspace"`
}

type PodCmdConnectionRequest struct {
	Namespace    string              `json:"namespace" validate:"required,dns1123label"`
	Controller   string              `json:"controller" validate:"required"`
	Pod          string              `json:"pod" validate:"required"`
	Container    string              `json:"container" validate:"required"`
	WsConnection WsConnectionRequest `json:"wsConnectionRequest" validate:"required"`
	LogTail      string              `json:"logTail"`
}

type ComponentLogConnectionRequest struct {
	WsConnection WsConnectionRequest `json:"wsConnectionRequest" validate:"required"`
	Component    string              `json:"component" validate:"required"`
	Namespace    *string             `json:"namespace,omitempty"`
	Controller   *string             `json:"controller,omitempty"`
	Release      *string             `json:"release,omitempty"`
}

type PodEventConnectionRequest struct {
	Namespace    string              `json:"namespace" validate:"required,dns1123label"`
	Controller   string              `json:"controller" validate:"required"`
	WsConnection WsConnectionRequest `json:"wsConnectionRequest" validate:"required"`
}

type ClusterToolConnectionRequest struct {
	WsConnection WsConnectionRequest `json:"wsConnectionRequest" validate:"required"`
	Tool         string              `json:"tool" validate:"required,oneof=k9s helm kubectl"`
}
