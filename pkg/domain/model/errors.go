package model

import "github.com/m-mizutani/goerr/v2"

// Error tags for the sync error taxonomy. Fatal tags abort the run; the
// partial failure tag marks a completed run with failed dispatches so the
// entrypoint can derive the exit status.
var (
	ErrTagConfig         = goerr.NewTag("config")
	ErrTagAuth           = goerr.NewTag("auth")
	ErrTagNotFound       = goerr.NewTag("not_found")
	ErrTagQuery          = goerr.NewTag("query")
	ErrTagPartialFailure = goerr.NewTag("partial_failure")
)

// Sentinel errors for directory operations
var (
	ErrGroupNotFound = goerr.New("group not found", goerr.T(ErrTagNotFound))
)
