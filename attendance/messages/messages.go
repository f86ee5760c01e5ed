package messages

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var defaultCatalogue []byte

// Resolver turns message codes into text. Placeholders are written {0}, {1}, ... and any
// argument that is itself a known code is resolved first, so labels can be passed as codes.
type Resolver struct {
	messages map[string]string
}

// New returns a resolver over the embedded catalogue.
func New() (*Resolver, error) {
	m, err := parse(defaultCatalogue)
	if err != nil {
		return nil, err
	}
	return &Resolver{messages: m}, nil
}

// Load returns a resolver over the embedded catalogue with entries from path layered on top.
// An empty path loads only the embedded catalogue.
func Load(path string) (*Resolver, error) {
	r, err := New()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return r, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages %s: %w", path, err)
	}
	override, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range override {
		r.messages[k] = v
	}
	return r, nil
}

func parse(data []byte) (map[string]string, error) {
	m := map[string]string{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse messages: %w", err)
	}
	return m, nil
}

// Message returns the text for code, or the code itself when it is unknown.
func (r *Resolver) Message(code string, args ...string) string {
	text, ok := r.messages[code]
	if !ok {
		return code
	}
	for i, arg := range args {
		if label, ok := r.messages[arg]; ok {
			arg = label
		}
		text = strings.ReplaceAll(text, "{"+strconv.Itoa(i)+"}", arg)
	}
	return text
}
