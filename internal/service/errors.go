package service

import "errors"

var (
	ErrNoProfile          = errors.New("no profile")
	ErrUnknownItem        = errors.New("unknown shop item")
	ErrNotOwned           = errors.New("item not owned")
	ErrAlreadyOwned       = errors.New("item already owned")
	ErrNotEquippable      = errors.New("item cannot be equipped")
	ErrAvatarLocked       = errors.New("custom avatar not unlocked")
	ErrStorageDisabled    = errors.New("avatar storage is not configured")
	ErrGenerationDisabled = errors.New("content generation is disabled")
)
