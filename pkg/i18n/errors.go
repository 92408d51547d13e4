package i18n

import "errors"

var (
	ErrParsingCancelled  = errors.New("translation parsing cancelled")
	ErrLoadingCancelled  = errors.New("loading translations cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrNilAdapter        = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode = errors.New("empty language code")
)
