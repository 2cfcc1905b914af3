//go:build corogll_fixtures

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fixture is one named CLI smoke-test case: an expression to feed the
// driver on stdin, and whether parsing it is expected to produce an error.
type fixture struct {
	Name        string `yaml:"name"`
	Input       string `yaml:"input"`
	ExpectError bool   `yaml:"expect_error"`
}

// loadFixtures reads a YAML table of named expression fixtures, used to
// smoke-test the CLI driver end to end without hand-writing each case as a
// Go literal.
func loadFixtures(path string) ([]fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fixtures []fixture
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return nil, err
	}
	return fixtures, nil
}
