package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// DeploymentNotification is sent by CI after a container has been deployed.
type DeploymentNotification struct {
	ContainerName  types.ContainerName `json:"containerName"`
	FeatureName    string              `json:"featureName"`
	BranchName     string              `json:"branchName"`
	BuildNumber    string              `json:"buildNumber"`
	ImageTag       string              `json:"imageTag"`
	RepositoryName string              `json:"repositoryName"`
}

func (x *DeploymentNotification) Validate() error {
	if x.FeatureName == "" && x.BranchName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "featureName or branchName is required")
	}
	return nil
}

// Identity returns the tracking identity of the notified feature.
func (x *DeploymentNotification) Identity() TrackingIdentity {
	return notifiedIdentity(x.FeatureName, x.BranchName)
}

// DeploymentFailure is sent by CI when a deployment fails.
type DeploymentFailure struct {
	FeatureName  string `json:"featureName"`
	BranchName   string `json:"branchName"`
	ErrorMessage string `json:"errorMessage"`
	BuildNumber  string `json:"buildNumber"`
}

func (x *DeploymentFailure) Validate() error {
	if x.FeatureName == "" && x.BranchName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "featureName or branchName is required")
	}
	return nil
}

func (x *DeploymentFailure) Identity() TrackingIdentity {
	return notifiedIdentity(x.FeatureName, x.BranchName)
}

// ContainerStatusRequest asks for an item to be refreshed from a container's current state.
type ContainerStatusRequest struct {
	ContainerName types.ContainerName `json:"containerName"`
	FeatureName   string              `json:"featureName"`
	BranchName    string              `json:"branchName"`
}

func (x *ContainerStatusRequest) Validate() error {
	if x.ContainerName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "containerName is required")
	}
	if x.FeatureName == "" && x.BranchName == "" {
		return goerr.Wrap(types.ErrValidationFailed, "featureName or branchName is required")
	}
	return nil
}

func (x *ContainerStatusRequest) Identity() TrackingIdentity {
	return notifiedIdentity(x.FeatureName, x.BranchName)
}

func notifiedIdentity(feature, branch string) TrackingIdentity {
	if branch == "" {
		return TrackingIdentity{CanonicalName: feature}
	}
	id := TrackingIdentity{CanonicalName: branch}
	if feature != branch {
		id.SecondaryName = feature
	}
	return id
}

// NotificationResult reports the outcome of a CI notification or container refresh.
type NotificationResult struct {
	Identity   TrackingIdentity `json:"identity"`
	Container  *ContainerRecord `json:"container,omitempty"`
	Reconciled bool             `json:"reconciled"`
	Upsert     *UpsertResult    `json:"upsert,omitempty"`
}
