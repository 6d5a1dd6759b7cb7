package dialogue

import "errors"

var (
	// ErrMissingAsset marks an unresolved dialogue id, portrait or audio ref.
	ErrMissingAsset = errors.New("missing asset")

	ErrInvalidScript = errors.New("invalid dialogue script")
)
