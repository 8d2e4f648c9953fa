package config

import (
	"errors"
	"io/fs"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Source is a place configuration values can be read from
type Source interface {
	Name() string
	Lookup(key string) (string, bool)
}

// EnvSource reads the process environment
type EnvSource struct {
	v *viper.Viper
}

// NewEnvSource creates a source backed by the process environment
func NewEnvSource() *EnvSource {
	v := viper.New()
	v.AutomaticEnv()
	return &EnvSource{v: v}
}

// Name returns the source name
func (s *EnvSource) Name() string {
	return "environment"
}

// Lookup returns the value of an environment variable
func (s *EnvSource) Lookup(key string) (string, bool) {
	if !s.v.IsSet(key) {
		return "", false
	}
	return s.v.GetString(key), true
}

// FileSource reads a key=value file. The file is parsed once, on first
// lookup, and never merged into the process environment.
type FileSource struct {
	path   string
	once   sync.Once
	values map[string]string
	err    error
}

// NewFileSource creates a source backed by the key=value file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name
func (s *FileSource) Name() string {
	return s.path
}

// Path returns the file path
func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) load() {
	s.once.Do(func() {
		values, err := godotenv.Read(s.path)
		if err != nil {
			// A missing file is the normal case
			if !errors.Is(err, fs.ErrNotExist) {
				s.err = err
			}
			return
		}
		s.values = values
	})
}

// Err returns the error from reading the file, if any. A missing file is not an error.
func (s *FileSource) Err() error {
	s.load()
	return s.err
}

// Lookup returns the value of key in the file
func (s *FileSource) Lookup(key string) (string, bool) {
	s.load()
	v, ok := s.values[key]
	return v, ok
}

// DefaultSources returns the process environment followed by the env file,
// so variables already set in the environment win over the file
func DefaultSources(envFile string) []Source {
	return []Source{NewEnvSource(), NewFileSource(envFile)}
}

// Lookup returns the first non-empty value of key and the name of the
// source it came from
func Lookup(sources []Source, key string) (value, from string, ok bool) {
	for _, src := range sources {
		if v, found := src.Lookup(key); found && v != "" {
			return v, src.Name(), true
		}
	}
	return "", "", false
}
