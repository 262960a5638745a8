package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultHidden1      = 16
	DefaultHidden2      = 16
	DefaultEpochs       = 8
	DefaultLearningRate = 0.05
	DefaultWidth        = 1280
	DefaultHeight       = 720
	DefaultBrushRadius  = 12.0
)

type Config struct {
	Network  NetworkConfig  `yaml:"network"`
	Training TrainingConfig `yaml:"training"`
	Window   WindowConfig   `yaml:"window"`
	ModelDir string         `yaml:"model_dir"`
}

type NetworkConfig struct {
	Hidden1 int `yaml:"hidden1"`
	Hidden2 int `yaml:"hidden2"`
}

type TrainingConfig struct {
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
	Limit        int     `yaml:"limit"`
}

type WindowConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	BrushRadius float64 `yaml:"brush_radius"`
}

func DefaultConfig() *Config {
	return &Config{
		Network: NetworkConfig{
			Hidden1: DefaultHidden1,
			Hidden2: DefaultHidden2,
		},
		Training: TrainingConfig{
			Epochs:       DefaultEpochs,
			LearningRate: DefaultLearningRate,
		},
		Window: WindowConfig{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			BrushRadius: DefaultBrushRadius,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
