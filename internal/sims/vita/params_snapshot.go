package vita

import (
	"strconv"

	"vita/internal/core"
)

// Parameters captures the current tunables for the HUD panel.
func (s *Sim) Parameters() core.ParameterSnapshot {
	params := s.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				floatParam("survive_max", "Survive ceiling", params.SurviveMax),
				floatParam("birth_min", "Birth floor", params.BirthMin),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("seed_fraction", "Glider fraction", params.SeedFraction),
			},
		},
		{
			Name: "Execution",
			Params: []core.Parameter{
				intParam("workers", "Workers", params.Workers),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust live.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "survive_max",
			Label: "Survive ceiling",
			Type:  core.ParamTypeFloat,
			Step:  0.025,
			Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		{
			Key:   "birth_min",
			Label: "Birth floor",
			Type:  core.ParamTypeFloat,
			Step:  0.025,
			Min: 0, Max: 1, HasMin: true, HasMax: true,
		},
		{
			Key:   "seed_fraction",
			Label: "Glider fraction",
			Type:  core.ParamTypeFloat,
			Step:  0.005,
			Min: 0, Max: 0.25, HasMin: true, HasMax: true,
		},
		{
			Key:   "workers",
			Label: "Workers",
			Type:  core.ParamTypeInt,
			Step:  1,
			Min: 1, Max: 64, HasMin: true, HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable, clamping to its valid range.
// Threshold changes take effect on the next Step; seeding changes on the next
// Reset.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "survive_max":
		s.cfg.Params.SurviveMax = clamp01(value)
		s.engine.SurviveMax = s.cfg.Params.SurviveMax
	case "birth_min":
		s.cfg.Params.BirthMin = clamp01(value)
		s.engine.BirthMin = s.cfg.Params.BirthMin
	case "seed_fraction":
		if value < 0 {
			value = 0
		}
		if value > 0.25 {
			value = 0.25
		}
		s.cfg.Params.SeedFraction = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable, clamping to its valid range.
func (s *Sim) SetIntParameter(key string, value int) bool {
	switch key {
	case "workers":
		if value < 1 {
			value = 1
		}
		if value > 64 {
			value = 64
		}
		s.cfg.Params.Workers = value
		s.engine.Workers = value
		return true
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
