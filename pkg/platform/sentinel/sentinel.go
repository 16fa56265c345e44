package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and infrastructure layers return
// these (optionally wrapped) so the dispute service can translate them into domain errors.
//
//   - ErrNotFound: user, report or history row does not exist
//   - ErrAlreadyUsed: an equivalent record already exists, or a guard is already held
//   - ErrUnavailable: a backing service (database, redis, kafka) cannot be reached
//
// For validation errors (bad input, missing fields), use pkg/domain-errors directly.
var (
	ErrNotFound    = errors.New("not found")
	ErrAlreadyUsed = errors.New("already used")
	ErrUnavailable = errors.New("unavailable")
)
