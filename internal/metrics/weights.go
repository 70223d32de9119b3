package metrics

// The weighting and normalization constants below are configuration, not
// business truth: the engine takes a Config so deployments can tune them.

// ScoreWeights are the weights of the composite per-employee overall score.
type ScoreWeights struct {
	Performance float64 `json:"performance"`
	Training    float64 `json:"training"`
	Projects    float64 `json:"projects"`
	Salary      float64 `json:"salary"`
	Tenure      float64 `json:"tenure"`
}

// ManagerWeights are the weights of the manager effectiveness score.
type ManagerWeights struct {
	Performance       float64 `json:"performance"`
	ProjectCompletion float64 `json:"projectCompletion"`
	TrainingScore     float64 `json:"trainingScore"`
	TeamSize          float64 `json:"teamSize"`
}

// Normalization maps raw metric values onto the 0-100 sub-score scale.
// Each target is the raw value that earns the full sub-score; values above
// the target are clamped.
type Normalization struct {
	MaxRating         float64 `json:"maxRating"`
	TrainingTarget    float64 `json:"trainingTarget"`
	ProjectTarget     float64 `json:"projectTarget"`
	SalaryCeiling     float64 `json:"salaryCeiling"`
	TenureTargetYears float64 `json:"tenureTargetYears"`
	TeamSizeTarget    float64 `json:"teamSizeTarget"`
}

// Band is one row of the performance classification table. Bands are
// evaluated top-down and the first band whose thresholds are both met
// (>= comparisons) wins.
type Band struct {
	Name         string  `json:"name"`
	MinAvgRating float64 `json:"minAvgRating"`
	MinTrainings int     `json:"minTrainings"`
}

type Config struct {
	Weights        ScoreWeights   `json:"weights"`
	ManagerWeights ManagerWeights `json:"managerWeights"`
	Normalization  Normalization  `json:"normalization"`
	Bands          []Band         `json:"bands"`
	FallbackBand   string         `json:"fallbackBand"`
	UnratedBand    string         `json:"unratedBand"`
}

func DefaultConfig() Config {
	return Config{
		Weights: ScoreWeights{
			Performance: 0.30,
			Training:    0.20,
			Projects:    0.20,
			Salary:      0.15,
			Tenure:      0.15,
		},
		ManagerWeights: ManagerWeights{
			Performance:       0.4,
			ProjectCompletion: 0.3,
			TrainingScore:     0.2,
			TeamSize:          0.1,
		},
		Normalization: Normalization{
			MaxRating:         5,
			TrainingTarget:    5,
			ProjectTarget:     5,
			SalaryCeiling:     200000,
			TenureTargetYears: 10,
			TeamSizeTarget:    8,
		},
		Bands: []Band{
			{Name: "Top Performer", MinAvgRating: 4.5, MinTrainings: 3},
			{Name: "High Performer", MinAvgRating: 4.0, MinTrainings: 2},
			{Name: "Solid Performer", MinAvgRating: 3.5, MinTrainings: 1},
			{Name: "Meets Expectations", MinAvgRating: 3.0, MinTrainings: 0},
		},
		FallbackBand: "Needs Improvement",
		UnratedBand:  "Unrated",
	}
}

// classify walks the band table top-down; the first band whose thresholds
// are both met wins, so a boundary value resolves to the higher band.
func (c Config) classify(avgRating float64, completedTrainings int) string {
	for _, band := range c.Bands {
		if avgRating >= band.MinAvgRating && completedTrainings >= band.MinTrainings {
			return band.Name
		}
	}
	return c.FallbackBand
}

// normalize clamps value/target onto [0,1] and scales to 0-100.
func normalize(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	score := value / target
	if score > 1 {
		score = 1
	}
	if score < 0 {
		score = 0
	}
	return score * 100
}
