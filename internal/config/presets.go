package config

var Presets = map[string]map[string]*Config{
	"harmonic": {
		"ground": {
			Potential: "harmonic", Method: "shooting", Stepper: "rk4",
			States: 1, EMax: 1.2,
		},
		"first3": {
			Potential: "harmonic", Method: "shooting", Stepper: "rk4",
			States: 3, EMax: 3.2,
		},
		"dense": {
			Potential: "harmonic", Method: "shooting", Stepper: "numerov",
			States: 5, EMax: 5.2, Points: 4001, Resolution: 0.02,
		},
		"fem": {
			Potential: "harmonic", Method: "fem", Points: 401, States: 5,
		},
	},
	"square_well": {
		"first3": {
			Potential: "square_well", Method: "shooting", Stepper: "rk4",
			States: 3, EMin: 0.1, EMax: 50, Resolution: 0.5,
		},
		"fem": {
			Potential: "square_well", Method: "fem", Points: 201, States: 5,
		},
	},
	"finite_well": {
		"bound": {
			Potential: "finite_well", Method: "shooting", Stepper: "rk4",
			States: 6, EMin: -19.9, EMax: -0.01, Resolution: 0.1,
		},
	},
	"double_well": {
		"split": {
			Potential: "double_well", Method: "shooting", Stepper: "numerov",
			States: 4, EMin: 0.05, EMax: 4, Resolution: 0.02, Points: 3001,
		},
	},
	"linear": {
		"first4": {
			Potential: "linear", Method: "shooting", Stepper: "rk4",
			States: 4, EMin: 0.1, EMax: 6, Resolution: 0.05,
		},
	},
	"morse": {
		"bound": {
			Potential: "morse", Method: "shooting", Stepper: "rk4",
			States: 4, EMin: -9.9, EMax: -0.01, Resolution: 0.05,
		},
	},
}

func GetPreset(potential, preset string) *Config {
	presets, ok := Presets[potential]
	if !ok {
		return nil
	}
	cfg, ok := presets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(potential string) []string {
	presets, ok := Presets[potential]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
