package status

// Stage bounds. Net stage values are always clamped into [MinStage, MaxStage].
const (
	MaxStage = 6
	MinStage = -6
)

// NetStage sums the stage deltas of all live modifier effects for one stat
// and clamps the result. Recomputed on demand from the current effect set so
// there is no running counter to keep in sync.
func NetStage(c Combatant, stat Stat) int {
	net := 0
	for _, e := range c.StatusSet().effects {
		s, dir, ok := e.Kind.Stage()
		if !ok || s != stat {
			continue
		}
		if dir == DirectionUp {
			net += e.Severity
		} else {
			net -= e.Severity
		}
	}

	if net > MaxStage {
		return MaxStage
	}
	if net < MinStage {
		return MinStage
	}
	return net
}

// Multiplier converts the net stage for a stat into the factor the damage
// and accuracy formulas apply to that stat:
//
//	stage >= 0: (2 + stage) / 2
//	stage <  0: 2 / (2 + |stage|)
//
// Stage 0 yields 1.0, +6 yields 4.0, -6 yields 0.25.
func Multiplier(c Combatant, stat Stat) float64 {
	stage := NetStage(c, stat)
	if stage >= 0 {
		return float64(2+stage) / 2
	}
	return 2 / float64(2-stage)
}
