package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Check defines a list of operation calls and their expected outcomes.
type Check struct {
	// Name uniquely identifies this check.
	Name string `yaml:"name"`

	// Description explains what this check validates.
	Description string `yaml:"description"`

	// Tolerance is the absolute tolerance for numeric comparisons.
	// Zero means the harness default.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// RunToken fixes the run token instead of generating one.
	RunToken string `yaml:"run_token,omitempty"`

	// Calls are evaluated in order.
	Calls []CallStep `yaml:"calls"`
}

// CallStep is a single operation call with its expected outcome.
type CallStep struct {
	// Call is the operation name (e.g., "cartesXY").
	Call string `yaml:"call"`

	// Args are the flattened positional arguments.
	Args []float64 `yaml:"args"`

	// Expect is the expected result. Decoded YAML: number, bool, string or
	// two-element list. Converted with ir.ValueOf at run time.
	Expect any `yaml:"expect,omitempty"`

	// Error is the expected error code.
	Error string `yaml:"error,omitempty"`

	// Within is an inclusive [min, max] range for numeric results.
	Within []float64 `yaml:"within,omitempty"`
}

// LoadCheck reads and parses a check YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadCheck(path string) (*Check, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read check file: %w", err)
	}
	return ParseCheck(data)
}

// ParseCheck parses check YAML.
func ParseCheck(data []byte) (*Check, error) {
	// Parse YAML with strict field validation (catches typos like "call:" vs "calls:")
	var check Check
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&check); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateCheck(&check); err != nil {
		return nil, fmt.Errorf("invalid check: %w", err)
	}

	return &check, nil
}

// validateCheck checks that required fields are present and valid.
func validateCheck(c *Check) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}

	if c.Description == "" {
		return fmt.Errorf("description is required")
	}

	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %v", c.Tolerance)
	}

	if len(c.Calls) == 0 {
		return fmt.Errorf("calls list is required and must be non-empty")
	}

	for i, step := range c.Calls {
		if err := validateCallStep(step); err != nil {
			return fmt.Errorf("calls[%d]: %w", i, err)
		}
	}

	return nil
}

// validateCallStep checks a single call.
func validateCallStep(s CallStep) error {
	if s.Call == "" {
		return fmt.Errorf("call is required")
	}

	outcomes := 0
	if s.Expect != nil {
		outcomes++
	}
	if s.Error != "" {
		outcomes++
	}
	if s.Within != nil {
		outcomes++
		if len(s.Within) != 2 {
			return fmt.Errorf("within must have 2 elements, got %d", len(s.Within))
		}
		if s.Within[0] > s.Within[1] {
			return fmt.Errorf("within range is inverted: [%v, %v]", s.Within[0], s.Within[1])
		}
	}

	if outcomes != 1 {
		return fmt.Errorf("exactly one of expect, error or within is required (call %s)", s.Call)
	}
	return nil
}
