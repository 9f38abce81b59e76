package config

// Presets are ready-made sweep bands. Wavelength bands follow the usual
// cold/thermal/hot source classification.
var Presets = map[string]*Config{
	"cold": {
		Conversion: "wavelength-energy", Species: "neutron",
		Min: 4e-10, Max: 30e-10, Points: 128, Format: "csv",
	},
	"thermal": {
		Conversion: "wavelength-energy", Species: "neutron",
		Min: 1e-10, Max: 4e-10, Points: 128, Format: "csv",
	},
	"hot": {
		Conversion: "wavelength-energy", Species: "neutron",
		Min: 0.4e-10, Max: 1e-10, Points: 128, Format: "csv",
	},
	"he3-thermal": {
		Conversion: "wavelength-energy", Species: "he3",
		Min: 1e-10, Max: 4e-10, Points: 128, Format: "csv",
	},
	"thermal-velocity": {
		Conversion: "energy-velocity", Species: "neutron",
		Min: 1, Max: 100, Points: 100, Format: "csv",
	},
}

// GetPreset returns the named preset, or nil if it does not exist. The
// returned config is a copy; callers may mutate it.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
