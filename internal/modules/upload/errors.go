package upload

import "errors"

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrEmptyFile      = errors.New("no file provided")
)
