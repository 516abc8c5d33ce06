package config

import "errors"

var (
	// ErrUnknownBackend indicates storage.backend is not sqlite, file or memory
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrUnknownCodec indicates storage.codec is not json or cbor
	ErrUnknownCodec = errors.New("unknown storage codec")

	// ErrInvalidLogLevel indicates logging.level is not a slog level name
	ErrInvalidLogLevel = errors.New("invalid log level")
)
