package storage

import "errors"

var ErrNotFound = errors.New("invoice not found")
var ErrConflict = errors.New("invoice conflict (duplicate invoice number)")
