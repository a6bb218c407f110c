package coverselect

import "sort"

// validate checks the parameter range invariants and the configuration
// consistency rule ("neither samples nor random_select" is a
// ConfigurationError, distinct from an out-of-range numeric parameter).
func validate(cfg Config) error {
	switch {
	case cfg.M < 45 || cfg.M > 54:
		return ErrInvalidParameters
	case cfg.N < 7 || cfg.N > 25:
		return ErrInvalidParameters
	case cfg.K < 4 || cfg.K > 7:
		return ErrInvalidParameters
	case cfg.S < 3 || cfg.S > 7:
		return ErrInvalidParameters
	case cfg.J < cfg.S || cfg.J > cfg.K:
		return ErrInvalidParameters
	case cfg.T < 1 || cfg.T > cfg.J:
		return ErrInvalidParameters
	case cfg.N > cfg.M:
		return ErrInvalidParameters
	}

	if !cfg.RandomSelect && len(cfg.Samples) == 0 {
		return ErrConfigurationError
	}
	if cfg.RandomSelect && len(cfg.Samples) > 0 {
		return ErrConfigurationError
	}

	if len(cfg.Samples) > 0 {
		if len(cfg.Samples) != cfg.N {
			return ErrInvalidParameters
		}
		seen := make(map[int]bool, len(cfg.Samples))
		for _, v := range cfg.Samples {
			if v < 1 || v > cfg.M {
				return ErrInvalidParameters
			}
			if seen[v] {
				return ErrInvalidParameters
			}
			seen[v] = true
		}
	}

	return nil
}

// sortedSample returns a new, ascending copy of vs.
func sortedSample(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)

	return out
}
