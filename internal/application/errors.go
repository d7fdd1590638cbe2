package application

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")

	// ErrNoSession is returned when an operation that requires an
	// authenticated session is invoked without one. The check lives at the
	// service boundary, not in the UI.
	ErrNoSession = errors.New("no authenticated session")
	// ErrNotOwner is returned when a session tries to retrieve or delete an
	// item it does not own.
	ErrNotOwner = errors.New("not the item owner")

	ErrItemNotFound = errors.New("item not found")
	ErrInvalidItem  = errors.New("invalid item")

	// ErrUploadsDisabled is returned when no object storage bucket is
	// configured for photo uploads.
	ErrUploadsDisabled = errors.New("image uploads not configured")

	ErrInvalidExperience = errors.New("invalid experience")

	// ErrStaleSearch marks a search whose response arrived after a newer
	// search for the same principal already superseded it. Its result must
	// never become visible.
	ErrStaleSearch = errors.New("stale search superseded")
)
