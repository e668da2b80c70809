package repository

import "errors"

var ErrInvalidSelectionData = errors.New("invalid selection data")
