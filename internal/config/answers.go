package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AnswersConfig holds the expected answers the runner checks solved days
// against. Keys are day numbers, values the expected answer values in part
// order.
type AnswersConfig struct {
	Days map[int][]string `yaml:"days"`
}

func LoadAnswers() (*AnswersConfig, error) {
	path := os.Getenv("AOC_ANSWERS_PATH")
	if path == "" {
		path = "configs/answers.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var cfg AnswersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *AnswersConfig) {
	if cfg.Days == nil {
		cfg.Days = make(map[int][]string)
	}
}

func (c *AnswersConfig) Validate() error {
	for day, answers := range c.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("invalid day %d: must be between 1 and 25", day)
		}
		if len(answers) < 1 || len(answers) > 2 {
			return fmt.Errorf("day %d: expected 1 or 2 answers, got %d", day, len(answers))
		}
		for i, answer := range answers {
			if answer == "" {
				return fmt.Errorf("day %d: answer %d is empty", day, i+1)
			}
		}
	}

	return nil
}

// For returns the expected answers of a day, if any are configured.
func (c *AnswersConfig) For(day int) ([]string, bool) {
	answers, ok := c.Days[day]
	return answers, ok
}
