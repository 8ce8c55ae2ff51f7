package usecase

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/pipeboard/pkg/domain/model"
	"github.com/m-mizutani/pipeboard/pkg/domain/types"
	"github.com/m-mizutani/pipeboard/pkg/utils/logging"
)

const lastUpdatedLayout = "2006-01-02"

var (
	pullRequestNamePattern = regexp.MustCompile(`PR-(\d+)`)
	pullRequestRefPattern  = regexp.MustCompile(`(?:PR-|#)(\d+)`)
)

// lockKeys returns the canonical name plus one key per pull request number
// found in the identity names, so that events reaching one item through the
// pull request fallback share a lock.
func lockKeys(id model.TrackingIdentity) []string {
	keys := []string{id.CanonicalName}
	for _, name := range id.Names() {
		for _, m := range pullRequestRefPattern.FindAllStringSubmatch(name, -1) {
			keys = append(keys, "pr:"+m[1])
		}
	}
	return keys
}

// Upsert finds the board item of the identity and writes columns to it, or
// creates the item when none exists. Upserts that share a canonical name or a
// pull request number are serialized within the process.
//
// When commit is not nil the upsert is event driven: an empty commit id
// together with an empty or placeholder message makes it a no-op reported as
// skipped. Upserts from the Build Monitor and CI notifications pass nil.
func (x *UseCase) Upsert(ctx context.Context, id model.TrackingIdentity, columns model.ColumnValues, commit *model.CommitRef) (*model.UpsertResult, error) {
	ctx = logging.WithIdentity(ctx, id.CanonicalName)
	logger := logging.From(ctx)

	if commit != nil && commit.ID == "" && (commit.Message == "" || commit.Message == model.PlaceholderCommitMessage) {
		logger.Info("skip upsert for event without commit data")
		return &model.UpsertResult{Action: model.UpsertSkipped}, nil
	}

	board := x.clients.Board()
	if board == nil {
		return nil, goerr.Wrap(types.ErrCollaboratorUnavailable, "board is not configured")
	}
	if id.CanonicalName == "" {
		return nil, goerr.Wrap(types.ErrIdentityUnresolvable, "canonical name is empty")
	}

	unlock := x.locks.LockAll(lockKeys(id)...)
	defer unlock()

	values := columns.Compact()
	values[types.ColumnLastUpdated] = model.Date(logging.CtxTime(ctx).Format(lastUpdatedLayout))

	items, err := board.ListItems(ctx)
	if err != nil {
		return nil, goerr.Wrap(types.ErrReconciliation.Wrap(err), "failed to list board items",
			goerr.V("identity", id.CanonicalName),
		)
	}

	if item := findItem(items, id, x.nameLimit); item != nil {
		if err := board.UpdateItem(ctx, item.ID, values); err != nil {
			return nil, goerr.Wrap(types.ErrReconciliation.Wrap(err), "failed to update board item",
				goerr.V("identity", id.CanonicalName),
				goerr.V("item_id", item.ID),
			)
		}
		logger.Info("board item updated", slog.String("item_id", string(item.ID)), slog.String("item_name", item.Name))
		return &model.UpsertResult{Action: model.UpsertUpdated, ItemID: item.ID}, nil
	}

	name := truncateName(id.CanonicalName, x.nameLimit)
	created, err := board.CreateItem(ctx, name, values)
	if err != nil {
		return nil, goerr.Wrap(types.ErrReconciliation.Wrap(err), "failed to create board item",
			goerr.V("identity", id.CanonicalName),
			goerr.V("name", name),
		)
	}
	logger.Info("board item created", slog.String("item_id", string(created.ID)), slog.String("item_name", name))
	return &model.UpsertResult{Action: model.UpsertCreated, ItemID: created.ID}, nil
}

// findItem looks up by exact canonical name, then exact secondary name, then
// for PR-<n> names any item naming the same pull request. A name longer than
// limit also matches the item created under its truncated form.
func findItem(items []*model.BoardItem, id model.TrackingIdentity, limit int) *model.BoardItem {
	names := id.Names()
	for _, name := range names {
		short := truncateName(name, limit)
		for _, item := range items {
			if item.Name == name || item.Name == short {
				return item
			}
		}
	}

	for _, name := range names {
		m := pullRequestNamePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		for _, item := range items {
			if containsPullRequestRef(item.Name, m[1]) {
				return item
			}
		}
	}

	return nil
}

// containsPullRequestRef checks "PR-<n>" or "#<n>" not followed by another digit.
func containsPullRequestRef(name, number string) bool {
	for _, ref := range []string{"PR-" + number, "#" + number} {
		rest := name
		for {
			idx := strings.Index(rest, ref)
			if idx < 0 {
				break
			}
			end := idx + len(ref)
			if end == len(rest) || rest[end] < '0' || rest[end] > '9' {
				return true
			}
			rest = rest[end:]
		}
	}
	return false
}

func truncateName(name string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(name) <= limit {
		return name
	}
	runes := []rune(name)
	return string(runes[:limit])
}
