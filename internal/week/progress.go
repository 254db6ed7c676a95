package week

// Progress is a pure derivation of weekly completion from a total and a
// target. All fields are computed; none are stored.
type Progress struct {
	TotalMinutes     int
	TargetMinutes    int
	RemainingMinutes int
	OverageMinutes   int
	Percent          float64
	Complete         bool
}

// Calculate derives completion figures. A non-positive target yields a zero
// Progress rather than dividing by zero.
func Calculate(totalMinutes, targetMinutes int) Progress {
	p := Progress{TotalMinutes: totalMinutes, TargetMinutes: targetMinutes}
	if targetMinutes <= 0 {
		return p
	}
	if totalMinutes < targetMinutes {
		p.RemainingMinutes = targetMinutes - totalMinutes
	} else {
		p.OverageMinutes = totalMinutes - targetMinutes
		p.Complete = true
	}
	p.Percent = float64(totalMinutes) * 100 / float64(targetMinutes)
	if p.Percent > 100 {
		p.Percent = 100
	}
	if p.Percent < 0 {
		p.Percent = 0
	}
	return p
}
