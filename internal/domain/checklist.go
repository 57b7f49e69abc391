package domain

// CheckResult is the outcome of one checklist check.
type CheckResult struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Passed   bool   `json:"passed"`
	Message  string `json:"message"`
}

// ChecklistSummary holds aggregate counts for a run.
type ChecklistSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summarize counts passed and failed results.
func Summarize(results []CheckResult) ChecklistSummary {
	s := ChecklistSummary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// CategoryGroup is the set of results registered under one category.
type CategoryGroup struct {
	Category string        `json:"category"`
	Results  []CheckResult `json:"results"`
}

// GroupByCategory groups results by category. Categories appear in the order
// they were first seen and results keep their registration order.
func GroupByCategory(results []CheckResult) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, r := range results {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, CategoryGroup{Category: r.Category})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}

// ChecklistReport is the full result of a checklist run.
type ChecklistReport struct {
	Project string           `json:"project"`
	Commit  string           `json:"commit,omitempty"`
	Results []CheckResult    `json:"results"`
	Summary ChecklistSummary `json:"summary"`
}

// OK reports whether every check passed.
func (r *ChecklistReport) OK() bool { return r.Summary.Failed == 0 }
