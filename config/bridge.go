package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type BridgeAction struct {
	// Command is the argv to run; each element is rendered as a template
	// against the task input before execution.
	Command []string `yaml:"command"`
	Timeout int      `yaml:"timeout"` // seconds, 0 means no limit
	WorkDir string   `yaml:"workDir"`
}

type BridgeConfig struct {
	Actions map[string]BridgeAction `yaml:"actions"`
}

func LoadBridgeConfigFromFile(file string) (conf BridgeConfig, err error) {
	var yamlBytes []byte
	if yamlBytes, err = os.ReadFile(file); err != nil {
		err = errors.Wrapf(err, "failed to read file %s", file)
		return
	}

	if err = yaml.Unmarshal(yamlBytes, &conf); err != nil {
		err = errors.Wrapf(err, "failed to unmarshal file %s", file)
		return
	}

	return
}
