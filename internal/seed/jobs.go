// Package seed holds the demo dataset used by the seed command and tests.
package seed

import (
	"fmt"

	"careerline.app/studio/internal/model"
)

// DemoJobCount is the number of jobs DemoJobs returns.
const DemoJobCount = 150

type department struct {
	name   string
	count  int
	titles []string
}

// Counts are distinct so the grouped listing has a stable order.
var departments = []department{
	{"Engineering", 42, []string{"Backend Engineer", "Frontend Engineer", "Site Reliability Engineer", "Data Engineer", "Mobile Engineer", "Engineering Manager"}},
	{"Sales", 31, []string{"Account Executive", "Sales Development Representative", "Solutions Engineer", "Sales Manager"}},
	{"Marketing", 22, []string{"Content Marketer", "Growth Marketer", "Product Marketing Manager", "Brand Designer"}},
	{"Customer Success", 19, []string{"Customer Success Manager", "Support Specialist", "Implementation Consultant"}},
	{"Product", 14, []string{"Product Manager", "Product Analyst", "Technical Product Manager"}},
	{"Design", 12, []string{"Product Designer", "UX Researcher", "Design Lead"}},
	{"Operations", 10, []string{"People Partner", "Recruiter", "Finance Analyst", "Office Manager"}},
}

var locations = []string{
	"San Francisco, CA",
	"New York, NY",
	"Austin, TX",
	"London, UK",
	"Berlin, Germany",
	"Toronto, Canada",
	"Bangalore, India",
	"Remote",
}

var workPolicies = []model.WorkPolicy{
	model.WorkPolicyRemote,
	model.WorkPolicyHybrid,
	model.WorkPolicyOnsite,
}

var employmentTypes = []model.EmploymentType{
	model.EmploymentTypeFullTime,
	model.EmploymentTypeFullTime,
	model.EmploymentTypeFullTime,
	model.EmploymentTypePartTime,
	model.EmploymentTypeContract,
	model.EmploymentTypeInternship,
	model.EmploymentTypeTemporary,
}

var experienceLevels = []model.ExperienceLevel{
	model.ExperienceLevelEntry,
	model.ExperienceLevelMid,
	model.ExperienceLevelMid,
	model.ExperienceLevelSenior,
	model.ExperienceLevelSenior,
	model.ExperienceLevelLead,
	model.ExperienceLevelExecutive,
}

var baseSalary = map[model.ExperienceLevel]int32{
	model.ExperienceLevelEntry:     60000,
	model.ExperienceLevelMid:       90000,
	model.ExperienceLevelSenior:    130000,
	model.ExperienceLevelLead:      160000,
	model.ExperienceLevelExecutive: 210000,
}

// DemoJobs returns the same DemoJobCount jobs on every call. IDs are 1-based
// positions; callers persisting them assign real ids and slugs.
func DemoJobs(companyID int64) []model.Job {
	jobs := make([]model.Job, 0, DemoJobCount)
	n := 0
	for _, dept := range departments {
		for i := 0; i < dept.count; i++ {
			title := dept.titles[i%len(dept.titles)]
			level := experienceLevels[n%len(experienceLevels)]
			location := locations[n%len(locations)]
			policy := workPolicies[n%len(workPolicies)]
			if location == "Remote" {
				policy = model.WorkPolicyRemote
			}

			salaryMin := baseSalary[level] + int32(n%5)*5000
			salaryMax := salaryMin + 30000

			jobs = append(jobs, model.Job{
				ID:              int64(n + 1),
				CompanyID:       companyID,
				Title:           title,
				Slug:            fmt.Sprintf("job-%d", n+1),
				Location:        location,
				Department:      dept.name,
				EmploymentType:  employmentTypes[n%len(employmentTypes)],
				ExperienceLevel: level,
				WorkPolicy:      policy,
				SalaryMin:       &salaryMin,
				SalaryMax:       &salaryMax,
				SalaryCurrency:  "USD",
				Description:     fmt.Sprintf("<p>Join our %s team as a %s based in %s.</p>", dept.name, title, location),
				IsActive:        n%10 != 9,
			})
			n++
		}
	}
	return jobs
}

// DepartmentCounts returns the number of demo jobs per department.
func DepartmentCounts() map[string]int {
	counts := make(map[string]int, len(departments))
	for _, d := range departments {
		counts[d.name] = d.count
	}
	return counts
}
