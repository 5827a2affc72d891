package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/service"
)

var _ = Describe("CompanyService", func() {
	var (
		ctx context.Context
		f   *fixture
		svc service.CompanyService
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture()
		svc = service.NewCompanyService(f.companies, f.settings, f.sections, f.tx, f.cache)
	})

	It("creates a company with default settings and an about section", func() {
		company, err := svc.Create(ctx, 10, "Acme Corp", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(company.Slug).To(Equal("acme-corp"))
		Expect(company.OwnerUserID).To(Equal(int64(10)))
		Expect(company.ID).NotTo(BeZero())

		Expect(f.db.settings[company.ID]).To(Equal(model.DefaultSettings(company.ID)))
		Expect(f.db.sections[company.ID]).To(HaveLen(1))
		Expect(f.db.sections[company.ID][0].Type).To(Equal(model.SectionTypeAbout))
		Expect(f.tx.calls).To(Equal(1))
	})

	It("uses the provided slug", func() {
		company, err := svc.Create(ctx, 10, "Acme", strPtr("Custom Slug"))
		Expect(err).NotTo(HaveOccurred())
		Expect(company.Slug).To(Equal("custom-slug"))
	})

	It("suffixes taken slugs", func() {
		f.seedCompany(1, 20, "acme")
		f.seedCompany(2, 20, "acme-1")

		company, err := svc.Create(ctx, 10, "Acme", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(company.Slug).To(Equal("acme-2"))
	})

	It("lists only the caller's companies", func() {
		f.seedCompany(1, 10, "mine")
		f.seedCompany(2, 20, "theirs")

		companies, err := svc.ListMine(ctx, 10)
		Expect(err).NotTo(HaveOccurred())
		Expect(companies).To(HaveLen(1))
		Expect(companies[0].Slug).To(Equal("mine"))
	})

	It("returns the live snapshot including hidden sections", func() {
		f.seedCompany(1, 10, "acme")
		f.db.sections[1] = append(f.db.sections[1], model.ContentSection{
			ID: "hidden", Title: "Soon", Type: model.SectionTypeCustom, IsVisible: false, DisplayOrder: 1,
		})

		snap, err := svc.Live(ctx, 10, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Company.Slug).To(Equal("acme"))
		Expect(snap.Sections).To(HaveLen(2))
	})

	It("falls back to default settings when none are stored", func() {
		f.seedCompany(1, 10, "acme")
		delete(f.db.settings, 1)

		snap, err := svc.Live(ctx, 10, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(snap.Settings).To(Equal(model.DefaultSettings(1)))
	})

	It("only lets the owner delete", func() {
		f.seedCompany(1, 10, "acme")

		Expect(svc.Delete(ctx, 20, 1)).To(MatchError(service.ErrForbidden))
		Expect(f.db.companies).To(HaveKey(int64(1)))

		Expect(svc.Delete(ctx, 10, 1)).To(Succeed())
		Expect(f.db.companies).NotTo(HaveKey(int64(1)))
		Expect(f.cache.invalidated).To(ConsistOf("acme"))
	})

	It("authorizes owners and rejects everyone else", func() {
		f.seedCompany(1, 10, "acme")

		company, err := svc.Authorize(ctx, 10, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(company.ID).To(Equal(int64(1)))

		_, err = svc.Authorize(ctx, 11, 1)
		Expect(err).To(MatchError(service.ErrForbidden))

		_, err = svc.Authorize(ctx, 10, 2)
		Expect(err).To(MatchError(service.ErrCompanyNotFound))
	})
})
