package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"careerline.app/studio/common/id"
	"careerline.app/studio/core/db"
	"careerline.app/studio/internal/cache"
	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/seed"
	"careerline.app/studio/internal/service"
	"careerline.app/studio/internal/store"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo company with published content and 150 jobs",
	RunE:  runSeed,
}

var (
	seedCompanyName string
	seedSlug        string
	seedOwnerEmail  string
)

func init() {
	seedCmd.Flags().StringVar(&seedCompanyName, "name", "Northwind Labs", "Company name")
	seedCmd.Flags().StringVar(&seedSlug, "slug", "northwind", "Company slug")
	seedCmd.Flags().StringVar(&seedOwnerEmail, "owner-email", "demo@careerline.test", "Email of the demo owner")

	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	stores := store.NewStores(database.Queries())
	// Seeding writes live rows directly, so there is nothing to enqueue or cache.
	services := service.NewServices(stores, service.NewTxRunner(database), cache.Disabled{}, queue.NoopProducer{}, cfg.WorkOS, cfg.SiteURL)

	owner, err := demoOwner(ctx, stores.Users(), seedOwnerEmail)
	if err != nil {
		return err
	}

	company, err := services.Companies().Create(ctx, owner.ID, seedCompanyName, &seedSlug)
	if err != nil {
		return fmt.Errorf("creating company: %w", err)
	}

	jobs := services.Jobs()
	for _, job := range seed.DemoJobs(company.ID) {
		if _, err := jobs.Create(ctx, owner.ID, company.ID, service.JobInput{
			Title:           job.Title,
			Location:        job.Location,
			Department:      job.Department,
			EmploymentType:  job.EmploymentType,
			ExperienceLevel: job.ExperienceLevel,
			WorkPolicy:      job.WorkPolicy,
			SalaryMin:       job.SalaryMin,
			SalaryMax:       job.SalaryMax,
			SalaryCurrency:  job.SalaryCurrency,
			Description:     job.Description,
			IsActive:        job.IsActive,
		}); err != nil {
			return fmt.Errorf("creating job %q: %w", job.Title, err)
		}
	}

	slog.InfoContext(ctx, "demo company seeded", "company_id", company.ID, "slug", company.Slug, "jobs", seed.DemoJobCount)
	fmt.Fprintf(cmd.OutOrStdout(), "seeded %s (company_id=%d) with %d jobs\n%s/%s/careers\n",
		company.Name, company.ID, seed.DemoJobCount, cfg.SiteURL, company.Slug)
	return nil
}

func demoOwner(ctx context.Context, users store.UserStore, email string) (*model.User, error) {
	existing, err := users.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up demo owner: %w", err)
	}

	workosID := "seed:" + email
	owner := &model.User{
		ID:       id.New(),
		Name:     "Demo Owner",
		Email:    email,
		WorkOSID: &workosID,
	}
	if err := users.UpsertByWorkOSID(ctx, owner); err != nil {
		return nil, fmt.Errorf("creating demo owner: %w", err)
	}
	return owner, nil
}
