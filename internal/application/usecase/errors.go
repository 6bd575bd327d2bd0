package usecase

import "errors"

// Tab group store errors.
var (
	// ErrStoreUnavailable means the store could not be opened.
	ErrStoreUnavailable = errors.New("tab group store unavailable")
	// ErrTabGroupNotFound means no record exists under the requested ID.
	ErrTabGroupNotFound = errors.New("tab group not found")
	// ErrStoreWrite wraps a failed put or delete.
	ErrStoreWrite = errors.New("tab group store write failed")
)

// Window errors.
var (
	ErrNoFocusedWindow  = errors.New("no focused window")
	ErrNothingToSuspend = errors.New("window has no restorable tabs")
	ErrEmptyTabGroup    = errors.New("tab group has no tabs to restore")
)
