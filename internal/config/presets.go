package config

var Presets = map[string]*Config{
	"day": {
		Method: "adams-bashforth-4", Reference: "adams-bashforth-4",
		StepSize: 0.1, StartTime: 0, EndTime: 24,
		InitState: []float64{10, 10, 50, 0},
	},
	"day-fine": {
		Method: "adams-bashforth-4", Reference: "adams-bashforth-4",
		StepSize: 0.01, StartTime: 0, EndTime: 24,
		InitState: []float64{10, 10, 50, 0},
	},
	"week": {
		Method: "adams-moulton-2", Reference: "adams-bashforth-4",
		StepSize: 0.25, StartTime: 0, EndTime: 168,
		InitState: []float64{10, 10, 50, 0},
	},
	"coarse": {
		Method: "dirk-radau", Reference: "adams-bashforth-4",
		StepSize: 0.5, StartTime: 0, EndTime: 24,
		InitState: []float64{10, 10, 50, 0},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	out.Solver = SolverConfig{Tolerance: DefaultTolerance, MaxIter: DefaultMaxIter}
	out.Env = EnvConfig{Temperature: DefaultTemperature, WindSpeed: DefaultWindSpeed}
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
