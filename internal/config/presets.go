package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Samples: DefaultSamples, Steps: DefaultSteps, TickMs: DefaultTickMs,
		Chart: "bar", Workers: 1,
	},
	"quick": {
		Samples: 1000, Steps: 9, TickMs: 250,
		Chart: "bar", Workers: 1,
	},
	"dense": {
		Samples: 50000, Steps: 39, TickMs: 750,
		Chart: "line", Workers: 4,
	},
	"smooth": {
		Samples: 20000, Steps: 19, TickMs: 500,
		Chart: "line", Workers: 2,
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
