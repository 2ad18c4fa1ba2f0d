package core

import "errors"

var (
	ErrFileNotFound      = errors.New("file not found")
	ErrUnsupportedFormat = errors.New("unsupported archive format")
	ErrTruncatedArchive  = errors.New("truncated archive")
	ErrIntegrityMismatch = errors.New("integrity mismatch")
)
