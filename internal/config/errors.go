package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into Config.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidLanguage is returned when APPERR_LANG is not a BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrInvalidOutput is returned when APPERR_OUTPUT names an unknown format.
	ErrInvalidOutput = errors.New("invalid output format")
)
