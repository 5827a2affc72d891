package listing_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/listing"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/seed"
)

// wantMatch restates the filter rules field by field for checking listing.Filter.
func wantMatch(j model.Job, f listing.Filters) bool {
	has := func(field, q string) bool {
		return strings.Contains(strings.ToLower(field), strings.ToLower(strings.TrimSpace(q)))
	}
	if strings.TrimSpace(f.Search) != "" &&
		!has(j.Title, f.Search) && !has(j.Department, f.Search) &&
		!has(j.Location, f.Search) && !has(j.Description, f.Search) {
		return false
	}
	if strings.TrimSpace(f.Location) != "" && !has(j.Location, f.Location) {
		return false
	}
	if strings.TrimSpace(f.Department) != "" && !has(j.Department, f.Department) {
		return false
	}
	return (f.WorkPolicy == "" || j.WorkPolicy == f.WorkPolicy) &&
		(f.EmploymentType == "" || j.EmploymentType == f.EmploymentType) &&
		(f.ExperienceLevel == "" || j.ExperienceLevel == f.ExperienceLevel)
}

func jobIDs(jobs []model.Job) []int64 {
	ids := make([]int64, len(jobs))
	for i, j := range jobs {
		ids[i] = j.ID
	}
	return ids
}

var _ = Describe("Filter", func() {
	var jobs []model.Job

	BeforeEach(func() {
		jobs = []model.Job{
			{ID: 1, Title: "Backend Engineer", Department: "Engineering", Location: "Berlin, Germany",
				WorkPolicy: model.WorkPolicyRemote, EmploymentType: model.EmploymentTypeFullTime,
				ExperienceLevel: model.ExperienceLevelSenior, Description: "Go and Postgres"},
			{ID: 2, Title: "Account Executive", Department: "Sales", Location: "New York, NY",
				WorkPolicy: model.WorkPolicyOnsite, EmploymentType: model.EmploymentTypeFullTime,
				ExperienceLevel: model.ExperienceLevelMid},
			{ID: 3, Title: "Design Intern", Department: "Design", Location: "Berlin, Germany",
				WorkPolicy: model.WorkPolicyHybrid, EmploymentType: model.EmploymentTypeInternship,
				ExperienceLevel: model.ExperienceLevelEntry, Description: "Figma experience"},
		}
	})

	It("returns everything for empty filters", func() {
		Expect(listing.Filters{}.IsEmpty()).To(BeTrue())
		Expect(jobIDs(listing.Filter(jobs, listing.Filters{}))).To(Equal([]int64{1, 2, 3}))
	})

	It("matches search text case-insensitively across text fields", func() {
		Expect(jobIDs(listing.Filter(jobs, listing.Filters{Search: "ENGINEER"}))).To(Equal([]int64{1}))
		Expect(jobIDs(listing.Filter(jobs, listing.Filters{Search: "sales"}))).To(Equal([]int64{2}))
		Expect(jobIDs(listing.Filter(jobs, listing.Filters{Search: "berlin"}))).To(Equal([]int64{1, 3}))
		Expect(jobIDs(listing.Filter(jobs, listing.Filters{Search: "figma"}))).To(Equal([]int64{3}))
	})

	It("combines filters with logical AND", func() {
		f := listing.Filters{Location: "berlin", WorkPolicy: model.WorkPolicyHybrid}
		Expect(jobIDs(listing.Filter(jobs, f))).To(Equal([]int64{3}))

		f = listing.Filters{Location: "berlin", EmploymentType: model.EmploymentTypeContract}
		Expect(listing.Filter(jobs, f)).To(BeEmpty())
	})

	It("matches enum fields exactly", func() {
		f := listing.Filters{ExperienceLevel: model.ExperienceLevelMid}
		Expect(jobIDs(listing.Filter(jobs, f))).To(Equal([]int64{2}))
		f = listing.Filters{Department: "design"}
		Expect(jobIDs(listing.Filter(jobs, f))).To(Equal([]int64{3}))
	})

	It("is sound and complete over the demo dataset", func() {
		demo := seed.DemoJobs(1)
		filterSets := []listing.Filters{
			{Search: "engineer"},
			{Search: "  Remote "},
			{Location: "remote"},
			{Department: "Sales", ExperienceLevel: model.ExperienceLevelSenior},
			{WorkPolicy: model.WorkPolicyHybrid, EmploymentType: model.EmploymentTypeFullTime},
			{Search: "london", Department: "engineering", WorkPolicy: model.WorkPolicyOnsite},
		}

		for _, f := range filterSets {
			got := listing.Filter(demo, f)
			kept := make(map[int64]bool, len(got))
			for _, j := range got {
				Expect(wantMatch(j, f)).To(BeTrue(), "unsound result %d for %+v", j.ID, f)
				kept[j.ID] = true
			}
			expected := 0
			for _, j := range demo {
				if wantMatch(j, f) {
					expected++
					Expect(kept).To(HaveKey(j.ID), "missing job %d for %+v", j.ID, f)
				}
			}
			Expect(got).To(HaveLen(expected))
		}
		Expect(listing.Filter(demo, filterSets[0])).NotTo(BeEmpty())
	})
})

var _ = Describe("GroupByDepartment", func() {
	It("groups the 150 demo jobs by descending count", func() {
		demo := seed.DemoJobs(1)
		Expect(demo).To(HaveLen(seed.DemoJobCount))

		groups := listing.GroupByDepartment(demo)
		counts := seed.DepartmentCounts()
		Expect(groups).To(HaveLen(len(counts)))

		total := 0
		for i, g := range groups {
			Expect(g.Count).To(Equal(counts[g.Department]))
			Expect(g.Jobs).To(HaveLen(g.Count))
			for _, j := range g.Jobs {
				Expect(j.Department).To(Equal(g.Department))
			}
			if i > 0 {
				Expect(groups[i-1].Count).To(BeNumerically(">=", g.Count))
			}
			total += g.Count
		}
		Expect(total).To(Equal(seed.DemoJobCount))
		Expect(groups[0].Department).To(Equal("Engineering"))
	})

	It("breaks ties by department name and labels missing departments", func() {
		groups := listing.GroupByDepartment([]model.Job{
			{ID: 1, Department: "Sales"},
			{ID: 2, Department: ""},
			{ID: 3, Department: "Design"},
		})
		Expect(groups).To(HaveLen(3))
		Expect(groups[0].Department).To(Equal("Design"))
		Expect(groups[1].Department).To(Equal(listing.OtherDepartment))
		Expect(groups[2].Department).To(Equal("Sales"))
	})

	It("returns an empty slice for no jobs", func() {
		Expect(listing.GroupByDepartment(nil)).To(BeEmpty())
	})
})

var _ = Describe("BuildFacets", func() {
	It("returns sorted distinct values", func() {
		facets := listing.BuildFacets([]model.Job{
			{Location: "Remote", Department: "Sales"},
			{Location: "Austin, TX", Department: "Sales"},
			{Location: "Remote", Department: ""},
		})
		Expect(facets.Locations).To(Equal([]string{"Austin, TX", "Remote"}))
		Expect(facets.Departments).To(Equal([]string{"Sales"}))
	})
})

var _ = Describe("Apply", func() {
	It("filters, groups and keeps facets from the full list", func() {
		result := listing.Apply([]model.Job{
			{ID: 1, Department: "Sales", Location: "Remote", WorkPolicy: model.WorkPolicyRemote},
			{ID: 2, Department: "Engineering", Location: "Berlin", WorkPolicy: model.WorkPolicyOnsite},
		}, listing.Filters{WorkPolicy: model.WorkPolicyRemote})

		Expect(result.Total).To(Equal(1))
		Expect(jobIDs(result.Jobs)).To(Equal([]int64{1}))
		Expect(result.Groups).To(HaveLen(1))
		Expect(result.Groups[0].Department).To(Equal("Sales"))
		Expect(result.Facets.Departments).To(Equal([]string{"Engineering", "Sales"}))
	})
})
