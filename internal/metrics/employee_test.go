package metrics

import (
	"errors"
	"reflect"
	"testing"

	"hrmetrics/internal/snapshot"
)

func TestSalaryGrowthScenario(t *testing.T) {
	// Hired 2022-01-15 at 90000, raised to 99000: growth is exactly 10.00.
	engine := fixtureEngine(t, date(2025, 1, 1))

	report, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.SalaryGrowthPct.Defined || report.SalaryGrowthPct.Value != 10.00 {
		t.Fatalf("expected growth 10.00, got %+v", report.SalaryGrowthPct)
	}
	if report.CurrentSalary != 99000 {
		t.Fatalf("expected current salary 99000, got %v", report.CurrentSalary)
	}
}

func TestTenureWholeYearsAndMonths(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 3, 14))

	report, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 2022-01-15 to 2025-03-14 is 3 years, 1 month (day not yet reached).
	if report.TenureYears != 3 || report.TenureMonths != 1 {
		t.Fatalf("expected 3y1m, got %dy%dm", report.TenureYears, report.TenureMonths)
	}
}

func TestFutureHireDateFails(t *testing.T) {
	engine := fixtureEngine(t, date(2023, 1, 1))

	_, err := engine.EmployeeMetrics("emp-nosalary")
	if !errors.Is(err, snapshot.ErrFutureHireDate) {
		t.Fatalf("expected ErrFutureHireDate, got %v", err)
	}
}

func TestNoSalaryRecordPropagates(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	_, err := engine.EmployeeMetrics("emp-nosalary")
	if !errors.Is(err, snapshot.ErrNoSalaryRecord) {
		t.Fatalf("expected ErrNoSalaryRecord, got %v", err)
	}
}

func TestNoReviewDataStaysAbsent(t *testing.T) {
	data := fixtureData()
	data.PerformanceReviews = nil
	snap, err := snapshot.New(date(2025, 1, 1), data)
	if err != nil {
		t.Fatalf("snapshot build failed: %v", err)
	}
	engine := NewEngine(snap, DefaultConfig())

	report, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.AverageRating != nil || report.LatestRating != nil {
		t.Fatalf("ratings should be absent without reviews: %+v", report)
	}
	if report.Classification != DefaultConfig().UnratedBand {
		t.Fatalf("expected unrated band, got %q", report.Classification)
	}
}

func TestTrainingMetricsCountCompletedOnly(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	report, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.CompletedTrainings != 1 {
		t.Fatalf("enrolled trainings must not count, got %d", report.CompletedTrainings)
	}
	if !report.AverageTrainingScore.Defined || report.AverageTrainingScore.Value != 88 {
		t.Fatalf("expected training score 88, got %+v", report.AverageTrainingScore)
	}
}

func TestProjectAndLeaveRates(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	report, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.ProjectCount != 2 {
		t.Fatalf("expected 2 projects, got %d", report.ProjectCount)
	}
	if !report.ProjectCompletionRate.Defined || report.ProjectCompletionRate.Value != 50 {
		t.Fatalf("expected completion 50, got %+v", report.ProjectCompletionRate)
	}
	if !report.LeaveApprovalRate.Defined || report.LeaveApprovalRate.Value != 50 {
		t.Fatalf("expected approval 50, got %+v", report.LeaveApprovalRate)
	}

	lead, err := engine.EmployeeMetrics("emp-lead")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.ProjectCompletionRate.Defined {
		t.Fatalf("no projects must be undefined, got %+v", lead.ProjectCompletionRate)
	}
	if lead.LeaveApprovalRate.Defined {
		t.Fatalf("no leave requests must be undefined, got %+v", lead.LeaveApprovalRate)
	}
}

func TestClassificationFirstMatchWins(t *testing.T) {
	cfg := DefaultConfig()

	cases := []struct {
		rating    float64
		trainings int
		want      string
	}{
		{4.5, 3, "Top Performer"},
		{4.5, 2, "High Performer"},
		{4.0, 2, "High Performer"},
		{3.5, 1, "Solid Performer"},
		{3.5, 0, "Meets Expectations"},
		{3.0, 0, "Meets Expectations"},
		{2.9, 5, "Needs Improvement"},
	}
	for _, tc := range cases {
		if got := cfg.classify(tc.rating, tc.trainings); got != tc.want {
			t.Fatalf("classify(%v, %d) = %q, want %q", tc.rating, tc.trainings, got, tc.want)
		}
	}
}

func TestEmployeeReportsExcludeWithReason(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	reports, excluded := engine.EmployeeReports()
	if len(reports) != 3 {
		t.Fatalf("expected 3 reports, got %d", len(reports))
	}
	if len(excluded) != 1 || excluded[0].EmployeeID != "emp-nosalary" || excluded[0].Reason != ReasonNoSalaryRecord {
		t.Fatalf("unexpected exclusions: %+v", excluded)
	}
}

func TestEmployeeMetricsIdempotent(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	first, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.EmployeeMetrics("emp-grow")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated computation differs:\n%+v\n%+v", first, second)
	}
}
