package config

import (
	"os"

	"github.com/goccy/go-yaml"
	"github.com/jcooky/go-din"
	"github.com/pkg/errors"
)

type AgentConfig struct {
	LogConfig

	Host         string `env:"HOST"`
	Port         int    `env:"PORT"`
	DirectoryUrl string `env:"A2A_DIRECTORY_URL"`
}

// AgentCard is the on-disk description of one agent: who it is, what it
// can do, and where it serves tasks.
type AgentCard struct {
	AgentId      string   `yaml:"agentId"`
	Name         string   `yaml:"name"`
	Capabilities []string `yaml:"capabilities"`
	Endpoint     string   `yaml:"endpoint"`
	DirectoryUrl string   `yaml:"directoryUrl"`
}

func LoadAgentCardFromFile(file string) (card AgentCard, err error) {
	var yamlBytes []byte
	if yamlBytes, err = os.ReadFile(file); err != nil {
		err = errors.Wrapf(err, "failed to read file %s", file)
		return
	}

	if err = yaml.Unmarshal(yamlBytes, &card); err != nil {
		err = errors.Wrapf(err, "failed to unmarshal file %s", file)
		return
	}

	return
}

func LoadAgentCardsFromFiles(files []string) ([]AgentCard, error) {
	cards := make([]AgentCard, 0, len(files))
	for _, file := range files {
		card, err := LoadAgentCardFromFile(file)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func init() {
	din.RegisterT(func(c *din.Container) (*AgentConfig, error) {
		conf := &AgentConfig{
			LogConfig: *NewLogConfig(),

			Host:         "0.0.0.0",
			Port:         9100,
			DirectoryUrl: "http://127.0.0.1:9080",
		}
		return conf, resolveConfig(conf)
	})
}
