package checklist

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tplkit/tplkit/internal/domain"
)

// Probe builds checks over files in a project.
type Probe struct {
	fs domain.ProjectFS
}

// NewProbe returns a Probe reading through fs.
func NewProbe(fs domain.ProjectFS) *Probe {
	return &Probe{fs: fs}
}

// Exists reports whether path exists.
func (p *Probe) Exists(path string) bool {
	return p.fs.Exists(path)
}

// FileExists passes when path exists.
func (p *Probe) FileExists(path string) CheckFunc {
	return func() (Outcome, error) {
		return Bool(p.Exists(path)), nil
	}
}

// Contains passes when the file at path contains substr. passMsg becomes
// the result message; empty means "OK".
func (p *Probe) Contains(path, substr, passMsg string) CheckFunc {
	return func() (Outcome, error) {
		content, err := p.ReadText(path)
		if err != nil {
			return Outcome{}, err
		}
		return PassIf(strings.Contains(content, substr), passMsg), nil
	}
}

// HasPrefix passes when the file at path starts with prefix.
func (p *Probe) HasPrefix(path, prefix, passMsg string) CheckFunc {
	return func() (Outcome, error) {
		content, err := p.ReadText(path)
		if err != nil {
			return Outcome{}, err
		}
		return PassIf(strings.HasPrefix(content, prefix), passMsg), nil
	}
}

// JSONValid passes when the file parses as JSON.
func (p *Probe) JSONValid(path string) CheckFunc {
	return func() (Outcome, error) {
		if _, err := p.ReadJSON(path); err != nil {
			return Outcome{}, err
		}
		return Pass("valid JSON"), nil
	}
}

// TOMLValid passes when the file parses as TOML.
func (p *Probe) TOMLValid(path string) CheckFunc {
	return func() (Outcome, error) {
		if _, err := p.ReadTOML(path); err != nil {
			return Outcome{}, err
		}
		return Pass("valid TOML"), nil
	}
}

// ReadText reads a file as a string.
func (p *Probe) ReadText(path string) (string, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ReadJSON decodes any JSON document.
func (p *Probe) ReadJSON(path string) (any, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// ReadJSONObject decodes a JSON document for key lookups. Arrays and
// scalars have no keys and yield a nil map; a null document is an error
// because nothing can be read from it.
func (p *Probe) ReadJSONObject(path string) (map[string]any, error) {
	doc, err := p.ReadJSON(path)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("%s: document is null", path)
	}
	m, _ := doc.(map[string]any)
	return m, nil
}

// ReadTOML decodes a TOML file into a generic map.
func (p *Probe) ReadTOML(path string) (map[string]any, error) {
	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Object returns doc[key] as an object, or nil when absent or not an object.
func Object(doc map[string]any, key string) map[string]any {
	if doc == nil {
		return nil
	}
	m, _ := doc[key].(map[string]any)
	return m
}

// String returns doc[key] as a string, or "" when absent or not a string.
func String(doc map[string]any, key string) string {
	if doc == nil {
		return ""
	}
	s, _ := doc[key].(string)
	return s
}
