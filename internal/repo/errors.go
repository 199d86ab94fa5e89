package repo

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrCredentialExists = errors.New("credential already exists")
)
