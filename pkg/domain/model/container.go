package model

import (
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// ContainerSummary is one row of the runtime's container list.
type ContainerSummary struct {
	Name   types.ContainerName `json:"name"`
	Status string              `json:"status"`
	Image  string              `json:"image"`
}

type ContainerRecord struct {
	Name          types.ContainerName `json:"name"`
	Status        string              `json:"status"`
	ContainerID   string              `json:"container_id"`
	ImageVersion  string              `json:"image_version"`
	ExposedPorts  string              `json:"exposed_ports"`
	Health        string              `json:"health"`
	ResourceUsage string              `json:"resource_usage"`
	DeployedAt    string              `json:"deployed_at"`
}

// ContainerBoardStatus maps a runtime state to the board label.
func ContainerBoardStatus(state string) string {
	switch state {
	case "running":
		return "Running"
	case "exited":
		return "Exited"
	case "stopped":
		return "Stopped"
	case "paused":
		return "Paused"
	case "restarting":
		return "Restarting"
	case "removing":
		return "Removing"
	case "dead":
		return "Dead"
	case "created":
		return "Starting"
	default:
		return "Failed"
	}
}

type ContainerOp string

const (
	ContainerStart   ContainerOp = "start"
	ContainerStop    ContainerOp = "stop"
	ContainerRestart ContainerOp = "restart"
)

func (x ContainerOp) Valid() bool {
	switch x {
	case ContainerStart, ContainerStop, ContainerRestart:
		return true
	}
	return false
}
