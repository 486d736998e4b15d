package config

import "errors"

var (
	// ErrParsingConfig is returned when values cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("config.errors.parsing_failed")

	// ErrInvalidConfigType is returned when the target is not a struct.
	ErrInvalidConfigType = errors.New("config.errors.invalid_type")

	// ErrNilPointer is returned when a nil pointer is passed to a loader.
	ErrNilPointer = errors.New("config.errors.nil_pointer")

	// ErrLoadingEnvFile is returned when a .env file cannot be read.
	ErrLoadingEnvFile = errors.New("config.errors.env_file")

	// ErrReadingFile is returned when a YAML config file cannot be read.
	ErrReadingFile = errors.New("config.errors.read_file")
)
