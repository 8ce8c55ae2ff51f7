package types

import "github.com/m-mizutani/goerr/v2"

// Sentinels carry an ID so that a copy made by Wrap, e.g.
// ErrReconciliation.Wrap(err), still matches errors.Is and keeps the cause
// in the chain.
var (
	// ErrMalformedPayload means a webhook body lacks required structural fields.
	ErrMalformedPayload = goerr.New("malformed payload", goerr.ID("malformed_payload"))

	// ErrIdentityUnresolvable should not happen given the identity fallback chain.
	ErrIdentityUnresolvable = goerr.New("identity unresolvable", goerr.ID("identity_unresolvable"))

	// ErrReconciliation is a remote board failure during find, create or update.
	ErrReconciliation = goerr.New("reconciliation failure", goerr.ID("reconciliation"))

	// ErrMonitoring is any failure during CI polling or stage fan-out.
	ErrMonitoring = goerr.New("monitoring failure", goerr.ID("monitoring"))

	// ErrCollaboratorUnavailable means CI, board, source-control or runtime is
	// not reachable or not configured.
	ErrCollaboratorUnavailable = goerr.New("collaborator unavailable", goerr.ID("collaborator_unavailable"))

	ErrInvalidOption    = goerr.New("invalid option", goerr.ID("invalid_option"))
	ErrValidationFailed = goerr.New("validation failed", goerr.ID("validation_failed"))
	ErrNotFound         = goerr.New("not found", goerr.ID("not_found"))
)
