package metrics

import (
	"sort"

	"hrmetrics/internal/snapshot"
)

// CollaborationReport describes one unordered department pair that shares
// at least one project. DepartmentA sorts before DepartmentB, and each
// pair appears exactly once in the full report.
type CollaborationReport struct {
	DepartmentA     string `json:"departmentA"`
	DepartmentAName string `json:"departmentAName"`
	DepartmentB     string `json:"departmentB"`
	DepartmentBName string `json:"departmentBName"`

	SharedProjects int     `json:"sharedProjects"`
	Participants   int     `json:"participants"`
	CombinedBudget float64 `json:"combinedBudget"`

	AverageRating  Ratio `json:"averageRating"`
	CompletionRate Ratio `json:"completionRate"`
}

// CollaborationReports scans every project once, groups its members by
// department, and folds each department pair into a de-duplicated report
// keyed on the lexicographically ordered pair.
func (e *Engine) CollaborationReports() ([]CollaborationReport, error) {
	type pairKey struct {
		a, b string
	}
	type pairAgg struct {
		projects     map[string]bool
		completed    int
		budget       float64
		participants map[string]bool
	}

	pairs := map[pairKey]*pairAgg{}

	for _, projectID := range e.snap.ProjectIDs() {
		project, err := e.snap.Project(projectID)
		if err != nil {
			return nil, err
		}

		membersByDept := map[string]map[string]bool{}
		for _, assignment := range e.snap.ProjectMembers(projectID) {
			employee, err := e.snap.Employee(assignment.EmployeeID)
			if err != nil {
				return nil, err
			}
			if membersByDept[employee.DepartmentID] == nil {
				membersByDept[employee.DepartmentID] = map[string]bool{}
			}
			membersByDept[employee.DepartmentID][employee.ID] = true
		}

		depts := make([]string, 0, len(membersByDept))
		for dept := range membersByDept {
			depts = append(depts, dept)
		}
		sort.Strings(depts)

		for i := 0; i < len(depts); i++ {
			for j := i + 1; j < len(depts); j++ {
				key := pairKey{a: depts[i], b: depts[j]}
				agg := pairs[key]
				if agg == nil {
					agg = &pairAgg{projects: map[string]bool{}, participants: map[string]bool{}}
					pairs[key] = agg
				}
				if !agg.projects[projectID] {
					agg.projects[projectID] = true
					agg.budget += project.Budget
					if project.Status == snapshot.ProjectStatusCompleted {
						agg.completed++
					}
				}
				for id := range membersByDept[depts[i]] {
					agg.participants[id] = true
				}
				for id := range membersByDept[depts[j]] {
					agg.participants[id] = true
				}
			}
		}
	}

	keys := make([]pairKey, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	var reports []CollaborationReport
	for _, key := range keys {
		agg := pairs[key]

		deptA, err := e.snap.Department(key.a)
		if err != nil {
			return nil, err
		}
		deptB, err := e.snap.Department(key.b)
		if err != nil {
			return nil, err
		}

		var ratings []float64
		for id := range agg.participants {
			review, err := e.snap.LatestReview(id)
			if err != nil {
				continue
			}
			ratings = append(ratings, float64(review.Rating))
		}

		reports = append(reports, CollaborationReport{
			DepartmentA:     key.a,
			DepartmentAName: deptA.Name,
			DepartmentB:     key.b,
			DepartmentBName: deptB.Name,
			SharedProjects:  len(agg.projects),
			Participants:    len(agg.participants),
			CombinedBudget:  agg.budget,
			AverageRating:   MeanOf(ratings),
			CompletionRate:  PercentOf(float64(agg.completed), float64(len(agg.projects))),
		})
	}
	return reports, nil
}
