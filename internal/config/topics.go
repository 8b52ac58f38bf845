package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultTopicsPath = "configs/topics.yaml"

func LoadTopicsConfig() (*TopicsConfig, error) {
	path := os.Getenv("TOPICS_CONFIG_PATH")
	if path == "" {
		path = defaultTopicsPath
	}

	return LoadTopicsConfigFile(path)
}

func LoadTopicsConfigFile(path string) (*TopicsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg TopicsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults normalizes keys and makes sure every topic lists its own key
// as an alias.
func applyDefaults(cfg *TopicsConfig) {
	for i := range cfg.Topics {
		topic := &cfg.Topics[i]
		topic.Key = strings.ToLower(strings.TrimSpace(topic.Key))

		hasKey := false
		for j, alias := range topic.Aliases {
			topic.Aliases[j] = strings.ToLower(strings.TrimSpace(alias))
			if topic.Aliases[j] == topic.Key {
				hasKey = true
			}
		}
		if !hasKey && topic.Key != "" {
			topic.Aliases = append([]string{topic.Key}, topic.Aliases...)
		}

		for j, marker := range topic.Markers {
			topic.Markers[j] = strings.ToLower(strings.TrimSpace(marker))
		}
	}
}

func (c *TopicsConfig) Validate() error {
	if len(c.Topics) == 0 {
		return fmt.Errorf("no topics configured")
	}

	seen := make(map[string]bool, len(c.Topics))
	for i, topic := range c.Topics {
		if topic.Key == "" {
			return fmt.Errorf("topic at index %d: missing key", i)
		}
		if seen[topic.Key] {
			return fmt.Errorf("duplicate topic key: %s", topic.Key)
		}
		seen[topic.Key] = true

		for _, marker := range topic.Markers {
			if marker == "" {
				return fmt.Errorf("topic %s: empty marker", topic.Key)
			}
		}
	}

	return nil
}
