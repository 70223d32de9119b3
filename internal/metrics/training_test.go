package metrics

import (
	"errors"
	"testing"

	"hrmetrics/internal/snapshot"
)

func TestTrainingROIDeltaScenario(t *testing.T) {
	// emp-grow's reviews go 3 -> 5, so the participant contributes +2;
	// emp-sales has a single review and is excluded from the average.
	engine := fixtureEngine(t, date(2025, 1, 1))

	report, err := engine.TrainingROI("prog-go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Participants != 2 {
		t.Fatalf("expected 2 participants, got %d", report.Participants)
	}
	if report.Evaluated != 1 {
		t.Fatalf("single-review participant must be excluded, got evaluated %d", report.Evaluated)
	}
	if !report.AverageRatingDelta.Defined || report.AverageRatingDelta.Value != 2 {
		t.Fatalf("expected delta 2, got %+v", report.AverageRatingDelta)
	}
	if report.ROIClass != ROIHigh {
		t.Fatalf("expected High, got %q", report.ROIClass)
	}
}

func TestTrainingROINoEvaluatedParticipants(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	report, err := engine.TrainingROI("prog-new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Participants != 0 {
		t.Fatalf("enrolled-only program should have no participants, got %d", report.Participants)
	}
	if report.AverageRatingDelta.Defined {
		t.Fatalf("delta must be undefined, got %+v", report.AverageRatingDelta)
	}
	if report.ROIClass != ROIInsufficientData {
		t.Fatalf("expected Insufficient Data, got %q", report.ROIClass)
	}
}

func TestROIClassBoundaries(t *testing.T) {
	cases := []struct {
		delta Ratio
		want  string
	}{
		{DefinedRatio(0.6), ROIHigh},
		{DefinedRatio(0.5), ROIPositive},
		{DefinedRatio(0.1), ROIPositive},
		{DefinedRatio(0), ROILow},
		{DefinedRatio(-1), ROILow},
		{UndefinedRatio(), ROIInsufficientData},
	}
	for _, tc := range cases {
		if got := roiClass(tc.delta); got != tc.want {
			t.Fatalf("roiClass(%+v) = %q, want %q", tc.delta, got, tc.want)
		}
	}
}

func TestTrainingROIReportsOrdered(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	reports, err := engine.TrainingROIReports()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
	if reports[0].ProgramID != "prog-go" || reports[1].ProgramID != "prog-new" {
		t.Fatalf("reports not ordered by program id: %+v", reports)
	}
}

func TestTrainingROIUnknownProgram(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	if _, err := engine.TrainingROI("prog-missing"); !errors.Is(err, snapshot.ErrMissingEntity) {
		t.Fatalf("expected ErrMissingEntity, got %v", err)
	}
}
