package repository

import "errors"

var (
	ErrReportNotFound = errors.New("repository: report not found")
	ErrCacheMiss      = errors.New("repository: cache miss")
)
