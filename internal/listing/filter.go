// Package listing filters and groups a company's job postings for the public
// careers page. Everything here works on an in-memory slice.
package listing

import (
	"sort"
	"strings"

	"careerline.app/studio/internal/model"
)

// OtherDepartment labels jobs that have no department.
const OtherDepartment = "Other"

// Filters narrows a job list. Zero-valued fields do not constrain.
type Filters struct {
	Search          string                `form:"search" json:"search,omitempty"`
	Location        string                `form:"location" json:"location,omitempty"`
	Department      string                `form:"department" json:"department,omitempty"`
	WorkPolicy      model.WorkPolicy      `form:"work_policy" json:"work_policy,omitempty"`
	EmploymentType  model.EmploymentType  `form:"employment_type" json:"employment_type,omitempty"`
	ExperienceLevel model.ExperienceLevel `form:"experience_level" json:"experience_level,omitempty"`
}

func (f Filters) IsEmpty() bool {
	return f == Filters{}
}

// Facets lists the distinct values a candidate can filter by.
type Facets struct {
	Locations   []string `json:"locations"`
	Departments []string `json:"departments"`
}

// Result is a filtered listing with its department groups. Facets are built
// from the unfiltered jobs so dropdowns keep every option.
type Result struct {
	Jobs   []model.Job             `json:"jobs"`
	Groups []model.DepartmentGroup `json:"groups"`
	Facets Facets                  `json:"facets"`
	Total  int                     `json:"total"`
}

func Apply(jobs []model.Job, f Filters) *Result {
	matched := Filter(jobs, f)
	return &Result{
		Jobs:   matched,
		Groups: GroupByDepartment(matched),
		Facets: BuildFacets(jobs),
		Total:  len(matched),
	}
}

// Match reports whether job satisfies every non-empty filter.
func Match(job model.Job, f Filters) bool {
	if q := strings.TrimSpace(f.Search); q != "" {
		if !containsFold(job.Title, q) &&
			!containsFold(job.Department, q) &&
			!containsFold(job.Location, q) &&
			!containsFold(job.Description, q) {
			return false
		}
	}
	if q := strings.TrimSpace(f.Location); q != "" && !containsFold(job.Location, q) {
		return false
	}
	if q := strings.TrimSpace(f.Department); q != "" && !containsFold(job.Department, q) {
		return false
	}
	if f.WorkPolicy != "" && job.WorkPolicy != f.WorkPolicy {
		return false
	}
	if f.EmploymentType != "" && job.EmploymentType != f.EmploymentType {
		return false
	}
	if f.ExperienceLevel != "" && job.ExperienceLevel != f.ExperienceLevel {
		return false
	}
	return true
}

// Filter returns the jobs matching f in their original order.
func Filter(jobs []model.Job, f Filters) []model.Job {
	out := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if Match(job, f) {
			out = append(out, job)
		}
	}
	return out
}

// GroupByDepartment partitions jobs by department, largest group first.
// Groups of equal size are ordered by department name.
func GroupByDepartment(jobs []model.Job) []model.DepartmentGroup {
	index := make(map[string]int)
	groups := make([]model.DepartmentGroup, 0)

	for _, job := range jobs {
		dept := departmentOf(job)
		i, ok := index[dept]
		if !ok {
			i = len(groups)
			index[dept] = i
			groups = append(groups, model.DepartmentGroup{Department: dept})
		}
		groups[i].Jobs = append(groups[i].Jobs, job)
		groups[i].Count++
	}

	sort.SliceStable(groups, func(a, b int) bool {
		if groups[a].Count != groups[b].Count {
			return groups[a].Count > groups[b].Count
		}
		return groups[a].Department < groups[b].Department
	})
	return groups
}

// BuildFacets collects sorted distinct locations and departments.
func BuildFacets(jobs []model.Job) Facets {
	return Facets{
		Locations:   distinct(jobs, func(j model.Job) string { return j.Location }),
		Departments: distinct(jobs, func(j model.Job) string { return j.Department }),
	}
}

func departmentOf(job model.Job) string {
	if d := strings.TrimSpace(job.Department); d != "" {
		return d
	}
	return OtherDepartment
}

func distinct(jobs []model.Job, field func(model.Job) string) []string {
	seen := make(map[string]bool)
	values := make([]string, 0)
	for _, job := range jobs {
		v := strings.TrimSpace(field(job))
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
