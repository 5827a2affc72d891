package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"careerline.app/studio/internal/client"
	"careerline.app/studio/internal/listing"
	"careerline.app/studio/internal/model"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs <company-slug>",
	Short: "Print the public job listing grouped by department",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobs,
}

var jobFilters listing.Filters

func init() {
	f := jobsCmd.Flags()
	f.StringVar(&jobFilters.Search, "search", "", "Match title, department or location")
	f.StringVar(&jobFilters.Location, "location", "", "Exact location")
	f.StringVar(&jobFilters.Department, "department", "", "Exact department")
	f.StringVar((*string)(&jobFilters.WorkPolicy), "work-policy", "", "remote, hybrid or onsite")
	f.StringVar((*string)(&jobFilters.EmploymentType), "employment-type", "", "full_time, part_time, contract, internship or temporary")
	f.StringVar((*string)(&jobFilters.ExperienceLevel), "experience-level", "", "entry, mid, senior, lead or executive")

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, args []string) error {
	api := client.New(client.Config{BaseURL: cfg.Editor.APIBaseURL})

	result, err := api.Jobs(cmd.Context(), args[0], jobFilters)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d jobs\n", result.Total)
	for _, group := range result.Groups {
		fmt.Fprintf(out, "\n%s (%d)\n", group.Department, group.Count)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, job := range group.Jobs {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", job.Title, job.Location, job.WorkPolicy, salary(job))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func salary(job model.Job) string {
	if job.SalaryMin == nil && job.SalaryMax == nil {
		return ""
	}
	parts := make([]string, 0, 2)
	for _, v := range []*int32{job.SalaryMin, job.SalaryMax} {
		if v != nil {
			parts = append(parts, fmt.Sprintf("%d", *v))
		}
	}
	return strings.Join(parts, "-") + " " + job.SalaryCurrency
}
