package planet

// Periapsis is the closest distance to the parent body, in meters.
func (o OrbitData) Periapsis() float64 {
	return o.SemiMajorAxis * (1 - o.Eccentricity)
}

// Apoapsis is the farthest distance from the parent body, in meters.
func (o OrbitData) Apoapsis() float64 {
	return o.SemiMajorAxis * (1 + o.Eccentricity)
}

// Bound reports whether the orbit is a closed ellipse.
func (o OrbitData) Bound() bool {
	return o.Eccentricity >= 0 && o.Eccentricity < 1
}

// DifficultyScale builds a Normal/Hard/Realistic scale.
func DifficultyScale(normal, hard, realistic float64) Scale {
	return Scale{"Normal": normal, "Hard": hard, "Realistic": realistic}
}
