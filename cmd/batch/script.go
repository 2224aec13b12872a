// Package batch runs a scripted sequence of catalog operations against a
// single catalog instance.
package batch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/bookshelf/internal/catalog"
)

// Operation names accepted in a script step.
const (
	OpList   = "list"
	OpAdd    = "add"
	OpDelete = "delete"
	OpUpdate = "update"
)

// Script is a batch of steps, applied in order.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. ID is used by delete and update, Book by add and
// update.
type Step struct {
	Op   string            `yaml:"op"`
	ID   string            `yaml:"id"`
	Book catalog.Candidate `yaml:"book"`
}

// ParseScript decodes a YAML (or JSON) script and checks every step names a
// known operation.
func ParseScript(data []byte) (Script, error) {
	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return Script{}, fmt.Errorf("failed to parse script: %w", err)
	}

	for i, step := range script.Steps {
		switch step.Op {
		case OpList, OpAdd, OpDelete, OpUpdate:
		default:
			return Script{}, fmt.Errorf("step %d: unknown operation %q", i+1, step.Op)
		}
	}

	return script, nil
}

// LoadScript reads and parses the script at path.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}
