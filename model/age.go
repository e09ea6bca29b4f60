package model

// AgeBucket is the band a player or team average age falls into. The
// same bands and labels are used everywhere an age is displayed.
type AgeBucket struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var (
	AgeUnknown = AgeBucket{Label: "unknown", Color: "#9e9e9e"}
	AgeYoung   = AgeBucket{Label: "young", Color: "#4caf50"}
	AgePrime   = AgeBucket{Label: "prime", Color: "#2196f3"}
	AgeVeteran = AgeBucket{Label: "veteran", Color: "#ff9800"}
	AgeOld     = AgeBucket{Label: "old", Color: "#f44336"}
)

// BucketForAge classifies an age: <=24 young, 25-28 prime, 29-31
// veteran, >=32 old. Ages <= 0 are unknown.
func BucketForAge(age int) AgeBucket {
	switch {
	case age <= 0:
		return AgeUnknown
	case age <= 24:
		return AgeYoung
	case age <= 28:
		return AgePrime
	case age <= 31:
		return AgeVeteran
	default:
		return AgeOld
	}
}

// BucketForAverageAge classifies a fractional team average age using the
// same bands. Averages at most 24.999… are still "young", matching the
// per-player boundaries.
func BucketForAverageAge(avg float64) AgeBucket {
	switch {
	case avg <= 0:
		return AgeUnknown
	case avg < 25:
		return AgeYoung
	case avg < 29:
		return AgePrime
	case avg < 32:
		return AgeVeteran
	default:
		return AgeOld
	}
}
