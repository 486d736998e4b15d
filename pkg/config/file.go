package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadFile fills v from a YAML file. Fields absent from the file keep their
// `envDefault` values; the process environment is not consulted and nothing
// is cached. Unknown keys are rejected.
func LoadFile[T any](path string, v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := checkStruct[T](); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrReadingFile, err)
	}

	var parsed T
	if err := env.ParseWithOptions(&parsed, env.Options{Environment: map[string]string{}}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(ErrParsingConfig, err)
	}

	*v = parsed
	return nil
}
