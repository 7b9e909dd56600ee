package service

import "errors"

// ErrNotFound is returned when an operation targets a record that does not exist
var ErrNotFound = errors.New("record not found")
