package component

import "github.com/juwon-cha/TycoonPlayableAD/core"

// IndicatorComponent visualizes one work phase
type IndicatorComponent struct {
	Desk    core.Entity
	Visible bool

	// Progress fills linearly from 0 to 1 over the work duration
	Progress float64
}
