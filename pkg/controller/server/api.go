package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

func (x *handler) containerStatus(w http.ResponseWriter, r *http.Request) {
	var req model.ContainerStatusRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "invalid container status request", err)
		return
	}

	result, err := x.uc.RefreshContainerStatus(r.Context(), &req)
	if err != nil {
		writeError(w, r, "failed to refresh container status", err)
		return
	}
	writeJSON(w, http.StatusOK, notificationResponse{Success: true, NotificationResult: result})
}

func (x *handler) listContainers(w http.ResponseWriter, r *http.Request) {
	containers, err := x.uc.ListContainers(r.Context())
	if err != nil {
		writeError(w, r, "failed to list containers", err)
		return
	}
	writeOK(w, "containers", containers)
}

func (x *handler) inspectContainer(w http.ResponseWriter, r *http.Request) {
	name := types.ContainerName(chi.URLParam(r, "name"))
	container, err := x.uc.InspectContainer(r.Context(), name)
	if err != nil {
		writeError(w, r, "failed to inspect container", err)
		return
	}
	writeOK(w, "container", container)
}

func (x *handler) controlContainer(w http.ResponseWriter, r *http.Request) {
	name := types.ContainerName(chi.URLParam(r, "name"))
	op := model.ContainerOp(chi.URLParam(r, "op"))
	if !op.Valid() {
		writeError(w, r, "unsupported container operation",
			goerr.Wrap(types.ErrValidationFailed, "unsupported container operation", goerr.V("op", op)))
		return
	}

	if err := x.uc.ControlContainer(r.Context(), name, op); err != nil {
		writeError(w, r, "failed to control container", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "container": name, "operation": op})
}

func (x *handler) containerLogs(w http.ResponseWriter, r *http.Request) {
	name := types.ContainerName(chi.URLParam(r, "name"))

	var lines int
	if v := r.URL.Query().Get("lines"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, "invalid lines parameter",
				goerr.Wrap(types.ErrValidationFailed, "lines must be a non-negative integer", goerr.V("lines", v)))
			return
		}
		lines = n
	}

	logs, err := x.uc.ContainerLogs(r.Context(), name, lines)
	if err != nil {
		writeError(w, r, "failed to get container logs", err)
		return
	}
	writeOK(w, "logs", logs)
}

// jobParam returns the job name of the route. Folder jobs are passed URL encoded,
// e.g. "team%2Fapp".
func jobParam(r *http.Request) types.JobName {
	raw := chi.URLParam(r, "job")
	if job, err := url.PathUnescape(raw); err == nil {
		return types.JobName(job)
	}
	return types.JobName(raw)
}

type triggerBuildRequest struct {
	Parameters  map[string]string `json:"parameters"`
	FeatureName string            `json:"featureName"`
}

func (x *handler) triggerBuild(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	job := jobParam(r)

	var req triggerBuildRequest
	if r.ContentLength != 0 {
		if err := decodeBody(r, &req); err != nil {
			writeError(w, r, "invalid build request", err)
			return
		}
	}

	location, err := x.uc.TriggerBuild(ctx, job, req.Parameters)
	if err != nil {
		writeError(w, r, "failed to trigger build", err)
		return
	}

	monitoring := false
	if req.FeatureName != "" {
		monitoring = x.uc.StartMonitor(DetachContext(ctx), model.MonitorTarget{
			Identity: model.TrackingIdentity{CanonicalName: req.FeatureName},
			JobName:  job,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"job":           job,
		"queueLocation": location,
		"monitoring":    monitoring,
	})
}

func (x *handler) lastBuild(w http.ResponseWriter, r *http.Request) {
	build, err := x.uc.GetLastBuild(r.Context(), jobParam(r))
	if err != nil {
		writeError(w, r, "failed to get last build", err)
		return
	}
	writeOK(w, "build", build)
}

func (x *handler) buildDetail(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || number <= 0 {
		writeError(w, r, "invalid build number",
			goerr.Wrap(types.ErrValidationFailed, "build number must be a positive integer", goerr.V("number", raw)))
		return
	}

	detail, err := x.uc.GetBuildDetail(r.Context(), jobParam(r), types.BuildNumber(number))
	if err != nil {
		writeError(w, r, "failed to get build detail", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"build":   detail.Build,
		"stages":  detail.Stages,
		"console": detail.Console,
	})
}

func (x *handler) listBoardItems(w http.ResponseWriter, r *http.Request) {
	items, err := x.uc.ListBoardItems(r.Context())
	if err != nil {
		writeError(w, r, "failed to list board items", err)
		return
	}
	if items == nil {
		items = []*model.BoardItem{}
	}
	writeOK(w, "items", items)
}

type commentRequest struct {
	Body string `json:"body"`
}

func (x *handler) commentBoardItem(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, "invalid comment request", err)
		return
	}

	id := types.ItemID(chi.URLParam(r, "id"))
	if err := x.uc.CommentBoardItem(r.Context(), id, req.Body); err != nil {
		writeError(w, r, "failed to comment board item", err)
		return
	}
	writeOK(w, "", nil)
}

func (x *handler) listMonitors(w http.ResponseWriter, r *http.Request) {
	runs := x.uc.ListMonitors(r.Context())
	if runs == nil {
		runs = []model.MonitorRun{}
	}
	writeOK(w, "monitors", runs)
}

func (x *handler) getRepository(w http.ResponseWriter, r *http.Request) {
	repo, err := x.uc.GetRepository(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"))
	if err != nil {
		writeError(w, r, "failed to get repository", err)
		return
	}
	writeOK(w, "repository", repo)
}

func (x *handler) getCommit(w http.ResponseWriter, r *http.Request) {
	sha := types.CommitSHA(chi.URLParam(r, "sha"))
	commit, err := x.uc.GetCommit(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"), sha)
	if err != nil {
		writeError(w, r, "failed to get commit", err)
		return
	}
	writeOK(w, "commit", commit)
}

func (x *handler) getPullRequest(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "number")
	number, err := strconv.Atoi(raw)
	if err != nil || number <= 0 {
		writeError(w, r, "invalid pull request number",
			goerr.Wrap(types.ErrValidationFailed, "pull request number must be a positive integer", goerr.V("number", raw)))
		return
	}

	pr, err := x.uc.GetPullRequest(r.Context(), chi.URLParam(r, "owner"), chi.URLParam(r, "repo"), types.PullRequestNumber(number))
	if err != nil {
		writeError(w, r, "failed to get pull request", err)
		return
	}
	writeOK(w, "pullRequest", pr)
}
