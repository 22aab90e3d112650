package insights

// Probability is the coarse chance of a candidate getting placed.
type Probability string

const (
	High   Probability = "High"
	Medium Probability = "Medium"
	Low    Probability = "Low"
)

// Predict classifies a profile with a fixed decision tree: academics first,
// then skills and projects.
func Predict(gpa float64, skills, projects int) Probability {
	switch {
	case gpa >= 8.5:
		if skills >= 3 || projects >= 2 {
			return High
		}
		return Medium
	case gpa >= 7.0:
		switch {
		case skills >= 4 && projects >= 2:
			return High
		case skills >= 2:
			return Medium
		default:
			return Low
		}
	default:
		// Weak academics need exceptional practical work.
		if projects >= 4 && skills >= 3 {
			return Medium
		}
		return Low
	}
}
