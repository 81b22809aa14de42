package config

import "errors"

// ErrCompletionKeyMissing indicates the API key for the selected completion
// provider was absent. The service refuses to start without it.
var ErrCompletionKeyMissing = errors.New("completion API key missing")

// ErrUnknownProvider indicates COMPLETION_PROVIDER named an unsupported backend.
var ErrUnknownProvider = errors.New("unsupported completion provider")
