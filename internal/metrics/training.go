package metrics

// ROI classes for the average pre/post rating delta of a program.
const (
	ROIHigh             = "High"
	ROIPositive         = "Positive"
	ROILow              = "Low"
	ROIInsufficientData = "Insufficient Data"
)

// TrainingROIReport compares each participant's earliest review rating
// against their latest as a pre/post proxy for one training program.
type TrainingROIReport struct {
	ProgramID string  `json:"programId"`
	Name      string  `json:"name"`
	Cost      float64 `json:"cost"`

	Participants int `json:"participants"`
	// Evaluated counts the participants with at least two reviews;
	// single-review participants are excluded from the delta average.
	Evaluated int `json:"evaluated"`

	AverageRatingDelta Ratio  `json:"averageRatingDelta"`
	ROIClass           string `json:"roiClass"`
}

func (e *Engine) TrainingROI(programID string) (TrainingROIReport, error) {
	program, err := e.snap.TrainingProgram(programID)
	if err != nil {
		return TrainingROIReport{}, err
	}

	report := TrainingROIReport{
		ProgramID: program.ID,
		Name:      program.Name,
		Cost:      program.Cost,
	}

	var deltas []float64
	for _, employeeID := range e.snap.ProgramParticipants(programID) {
		report.Participants++
		reviews := e.snap.Reviews(employeeID)
		if len(reviews) < 2 {
			continue
		}
		report.Evaluated++
		earliest := reviews[0]
		latest := reviews[len(reviews)-1]
		deltas = append(deltas, float64(latest.Rating-earliest.Rating))
	}

	report.AverageRatingDelta = MeanOf(deltas)
	report.ROIClass = roiClass(report.AverageRatingDelta)
	return report, nil
}

// TrainingROIReports computes the ROI report for every program, ordered by
// program id.
func (e *Engine) TrainingROIReports() ([]TrainingROIReport, error) {
	var reports []TrainingROIReport
	for _, id := range e.snap.TrainingProgramIDs() {
		report, err := e.TrainingROI(id)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func roiClass(delta Ratio) string {
	switch {
	case !delta.Defined:
		return ROIInsufficientData
	case delta.Value > 0.5:
		return ROIHigh
	case delta.Value > 0:
		return ROIPositive
	default:
		return ROILow
	}
}
