package store

import "errors"

// ErrCorruptSnapshot indicates the stored snapshot could not be decoded.
// There is no schema version, so the usual fix is `pinboard clear`.
var ErrCorruptSnapshot = errors.New("stored board snapshot is unreadable")
