package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/errutil"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

type eventResponse struct {
	Success bool `json:"success"`
	*model.EventResult
}

type notificationResponse struct {
	Success bool `json:"success"`
	*model.NotificationResult
}

// readWebhookPayload returns the body of a GitHub webhook, validating its
// signature when a secret is configured.
func (x *handler) readWebhookPayload(r *http.Request) ([]byte, error) {
	if x.webhookSecret == "" {
		payload, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
		if err != nil {
			return nil, goerr.Wrap(types.ErrValidationFailed.Wrap(err), "failed to read webhook body")
		}
		return payload, nil
	}

	payload, err := github.ValidatePayload(r, []byte(x.webhookSecret))
	if err != nil {
		return nil, goerr.Wrap(errInvalidSignature.Wrap(err), "failed to validate webhook payload")
	}
	return payload, nil
}

var errInvalidSignature = goerr.New("invalid webhook signature", goerr.ID("invalid_signature"))

func (x *handler) githubWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	payload, err := x.readWebhookPayload(r)
	if err != nil {
		if errors.Is(err, errInvalidSignature) {
			errutil.Warn(ctx, "rejected GitHub webhook", err)
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "error": "invalid signature"})
			return
		}
		writeError(w, r, "failed to read GitHub webhook", err)
		return
	}

	eventType := types.GitHubEventType(github.WebHookType(r))
	ctx = logging.CtxWithDeliveryID(ctx, types.DeliveryID(github.DeliveryID(r)))
	ctx = logging.WithAttrs(ctx, slog.String("event_type", string(eventType)))

	ev, err := x.uc.NormalizeWebhook(ctx, eventType, payload)
	if err != nil {
		writeError(w, r.WithContext(ctx), "failed to normalize GitHub webhook", err)
		return
	}

	result, err := x.uc.HandlePipelineEvent(ctx, ev)
	if err != nil {
		writeError(w, r.WithContext(ctx), "failed to handle pipeline event", err)
		return
	}

	if result.Monitor != nil {
		result.Monitoring = x.uc.StartMonitor(DetachContext(ctx), *result.Monitor)
	}

	writeJSON(w, http.StatusOK, eventResponse{Success: true, EventResult: result})
}

func (x *handler) deploymentWebhook(w http.ResponseWriter, r *http.Request) {
	var req model.DeploymentNotification
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "invalid deployment notification", err)
		return
	}

	result, err := x.uc.HandleDeployment(r.Context(), &req)
	if err != nil {
		writeError(w, r, "failed to handle deployment notification", err)
		return
	}
	writeJSON(w, http.StatusOK, notificationResponse{Success: true, NotificationResult: result})
}

func (x *handler) deploymentFailureWebhook(w http.ResponseWriter, r *http.Request) {
	var req model.DeploymentFailure
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "invalid deployment failure", err)
		return
	}

	result, err := x.uc.HandleDeploymentFailure(r.Context(), &req)
	if err != nil {
		writeError(w, r, "failed to handle deployment failure", err)
		return
	}
	writeJSON(w, http.StatusOK, notificationResponse{Success: true, NotificationResult: result})
}
