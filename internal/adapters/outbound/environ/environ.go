package environ

import "os"

// ProcessEnv implements domain.EnvLookup over the process environment.
type ProcessEnv struct{}

func New() *ProcessEnv {
	return &ProcessEnv{}
}

func (e *ProcessEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}
