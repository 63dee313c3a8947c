package catalog

import "errors"

var (
	ErrBranchNotFound = errors.New("branch not found")
	ErrTypeNotFound   = errors.New("appointment type not found")
	ErrCodeTaken      = errors.New("branch code already in use")
)
