package config

var Presets = map[string]*Config{
	"quick": {
		Network:  NetworkConfig{Hidden1: 16, Hidden2: 16},
		Training: TrainingConfig{Epochs: 3, LearningRate: 0.1, Limit: 5000},
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight, BrushRadius: DefaultBrushRadius},
	},
	"standard": {
		Network:  NetworkConfig{Hidden1: 16, Hidden2: 16},
		Training: TrainingConfig{Epochs: 8, LearningRate: 0.05},
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight, BrushRadius: DefaultBrushRadius},
	},
	"wide": {
		Network:  NetworkConfig{Hidden1: 64, Hidden2: 32},
		Training: TrainingConfig{Epochs: 12, LearningRate: 0.03},
		Window:   WindowConfig{Width: DefaultWidth, Height: DefaultHeight, BrushRadius: DefaultBrushRadius},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
