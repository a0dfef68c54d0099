package env

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"puzzle_place/internal/config"
)

type gameYAML struct {
	Game struct {
		CaseCount  int     `yaml:"case_count"`
		MaxPrizes  int     `yaml:"max_prizes"`
		BankerRate float64 `yaml:"banker_rate"`
	} `yaml:"game"`
}

type gameConfig struct {
	caseCount  int
	maxPrizes  int
	bankerRate float64
}

// NewGameConfigFromYAML читает игровые параметры из config.yaml
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if parsed.Game.CaseCount <= 0 {
		return nil, fmt.Errorf("case_count must be positive")
	}
	if parsed.Game.MaxPrizes <= 0 || parsed.Game.MaxPrizes > parsed.Game.CaseCount {
		return nil, fmt.Errorf("max_prizes must be in 1..case_count")
	}
	if parsed.Game.BankerRate <= 0 || parsed.Game.BankerRate > 1 {
		return nil, fmt.Errorf("banker_rate must be in (0, 1]")
	}

	return &gameConfig{
		caseCount:  parsed.Game.CaseCount,
		maxPrizes:  parsed.Game.MaxPrizes,
		bankerRate: parsed.Game.BankerRate,
	}, nil
}

func (cfg *gameConfig) CaseCount() int {
	return cfg.caseCount
}

func (cfg *gameConfig) MaxPrizes() int {
	return cfg.maxPrizes
}

func (cfg *gameConfig) BankerRate() float64 {
	return cfg.bankerRate
}
