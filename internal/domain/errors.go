package domain

import "errors"

var (
	ErrInvalidDirection    = errors.New("invalid direction")
	ErrInvalidPace         = errors.New("invalid pace mode")
	ErrInvalidRevisionMode = errors.New("invalid revision mode")
	ErrPageOutOfRange      = errors.New("page out of mushaf range")
	ErrTargetBehindStart   = errors.New("target page lies behind start page for the configured direction")
	ErrStartOutsideSurah   = errors.New("start position outside the surah page range")
	ErrUnknownSurah        = errors.New("unknown surah index")
	ErrInvalidSlot         = errors.New("weekday slot out of range")
	ErrInvalidJuz          = errors.New("juz index out of range")
)
