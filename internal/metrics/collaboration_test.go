package metrics

import (
	"testing"
)

func TestCollaborationPairAppearsExactlyOnce(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	reports, err := engine.CollaborationReports()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected exactly one department pair, got %d", len(reports))
	}

	pair := reports[0]
	if pair.DepartmentA != "dept-eng" || pair.DepartmentB != "dept-sales" {
		t.Fatalf("pair not ordered lexicographically: %s / %s", pair.DepartmentA, pair.DepartmentB)
	}
	if pair.DepartmentA >= pair.DepartmentB {
		t.Fatalf("unordered pair identity violated: %s >= %s", pair.DepartmentA, pair.DepartmentB)
	}
}

func TestCollaborationAggregates(t *testing.T) {
	engine := fixtureEngine(t, date(2025, 1, 1))

	reports, err := engine.CollaborationReports()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pair := reports[0]

	if pair.SharedProjects != 1 {
		t.Fatalf("expected 1 shared project, got %d", pair.SharedProjects)
	}
	if pair.Participants != 2 {
		t.Fatalf("expected 2 participants, got %d", pair.Participants)
	}
	if pair.CombinedBudget != 500000 {
		t.Fatalf("expected budget 500000, got %v", pair.CombinedBudget)
	}
	if !pair.AverageRating.Defined || pair.AverageRating.Value != 4.5 {
		t.Fatalf("expected average rating 4.5, got %+v", pair.AverageRating)
	}
	if !pair.CompletionRate.Defined || pair.CompletionRate.Value != 100 {
		t.Fatalf("expected completion 100, got %+v", pair.CompletionRate)
	}
}

func TestCollaborationBeforeAnyDataIsEmpty(t *testing.T) {
	engine := fixtureEngine(t, date(2010, 1, 1))

	reports, err := engine.CollaborationReports()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reports) != 0 {
		t.Fatalf("expected no pairs before any data, got %d", len(reports))
	}
}
