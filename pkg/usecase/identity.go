package usecase

import (
	"fmt"
	"regexp"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
)

// IdentityPolicy rewrites a resolved canonical name. It must be deterministic.
type IdentityPolicy func(name string) string

// KeepIdentity is the default policy. The name is used as is.
func KeepIdentity(name string) string { return name }

var trailingDigitsPattern = regexp.MustCompile(`([-_]?)([0-9]+)$`)

// StripTrailingID removes a trailing run of 9 or 10 digits, optionally prefixed by
// '-' or '_'. Shorter or longer runs are kept, and a name made only of the run is
// kept.
func StripTrailingID(name string) string {
	m := trailingDigitsPattern.FindStringSubmatchIndex(name)
	if m == nil {
		return name
	}
	digits := m[5] - m[4]
	if digits < 9 || digits > 10 {
		return name
	}
	if m[0] == 0 {
		return name
	}
	return name[:m[0]]
}

// ResolveIdentity maps an event to the key of its board item. The feature branch
// always wins over the merge target, so an item keeps its identity from first push
// to merge.
func ResolveIdentity(ev *model.PipelineEvent) (model.TrackingIdentity, error) {
	if ev.IsDirectMainPush() {
		return model.TrackingIdentity{
			CanonicalName: model.MainDirectPushName,
			SecondaryName: string(ev.SourceBranch),
		}, nil
	}

	var name string
	switch {
	case ev.SourceBranch != "":
		// PR head branch, extracted merge source or ref branch, already ordered by the normalizer
		name = string(ev.SourceBranch)
	case ev.RefBranch != "":
		name = string(ev.RefBranch)
	case ev.CommitID != "":
		name = commitIdentity(ev.CommitID)
	}

	if name == "" {
		return model.TrackingIdentity{}, goerr.Wrap(types.ErrIdentityUnresolvable, "event has no branch nor commit",
			goerr.V("kind", ev.Kind),
			goerr.V("repository", ev.Repository.FullName),
		)
	}

	id := model.TrackingIdentity{CanonicalName: name}
	if ev.PullRequestNumber > 0 {
		if prName := fmt.Sprintf("PR-%d", ev.PullRequestNumber); prName != name {
			id.SecondaryName = prName
		}
	}
	return id, nil
}

func (x *UseCase) resolveIdentity(ev *model.PipelineEvent) (model.TrackingIdentity, error) {
	id, err := ResolveIdentity(ev)
	if err != nil {
		return id, err
	}
	if id.CanonicalName == model.MainDirectPushName {
		return id, nil
	}

	if applied := x.identityPolicy(id.CanonicalName); applied != "" && applied != id.CanonicalName {
		if id.SecondaryName == "" {
			id.SecondaryName = id.CanonicalName
		}
		id.CanonicalName = applied
	}
	return id, nil
}
