package domain

import "errors"

var (
	// ErrFileRead marks a dependency file that could not be read.
	ErrFileRead = errors.New("dependency file unreadable")
	// ErrQueryFailed marks a package-manager query that produced no usable output.
	ErrQueryFailed = errors.New("package query failed")
)
