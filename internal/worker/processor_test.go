package worker_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/model"
	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/worker"
)

var _ = Describe("Processor", func() {
	var (
		ctx       context.Context
		companies *mockCompanyStore
		refresher *mockRefresher
		notifier  *mockNotifier
		processor *worker.Processor
	)

	BeforeEach(func() {
		ctx = context.Background()
		companies = &mockCompanyStore{companies: map[int64]model.Company{
			1: {ID: 1, Name: "Acme", Slug: "acme", OwnerUserID: 10},
		}}
		refresher = &mockRefresher{}
		notifier = &mockNotifier{}
		processor = worker.NewProcessor(worker.ProcessorStores{
			Companies: companies,
			Jobs: &mockJobStore{jobs: map[int64]model.Job{
				100: {ID: 100, CompanyID: 1, Title: "Engineer"},
			}},
			Applications: &mockApplicationStore{apps: map[int64]model.Application{
				500: {ID: 500, CompanyID: 1, JobID: 100, Name: "Ada", Status: model.ApplicationStatusPending},
			}},
			Users: &mockUserStore{users: map[int64]model.User{
				10: {ID: 10, Email: "owner@acme.test"},
			}},
		}, refresher, notifier)
	})

	It("warms the page cache on publish", func() {
		err := processor.Process(ctx, queue.Message{EventType: queue.EventPagePublished, CompanyID: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(refresher.slugs).To(Equal([]string{"acme"}))
	})

	It("returns refresh errors so the message is retried", func() {
		refresher.refreshFn = func(context.Context, string) (*model.PublicPage, error) {
			return nil, errors.New("db down")
		}
		err := processor.Process(ctx, queue.Message{EventType: queue.EventPagePublished, CompanyID: 1})
		Expect(err).To(HaveOccurred())
	})

	It("drops publish events for deleted companies", func() {
		err := processor.Process(ctx, queue.Message{EventType: queue.EventPagePublished, CompanyID: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(refresher.slugs).To(BeEmpty())
	})

	It("notifies the owner of a new application", func() {
		appID := int64(500)
		err := processor.Process(ctx, queue.Message{
			EventType:     queue.EventApplicationSubmitted,
			CompanyID:     1,
			ApplicationID: &appID,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(notifier.notices).To(HaveLen(1))
		notice := notifier.notices[0]
		Expect(notice.Owner.Email).To(Equal("owner@acme.test"))
		Expect(notice.Job.Title).To(Equal("Engineer"))
		Expect(notice.Application.Name).To(Equal("Ada"))
	})

	It("drops application events without an application id", func() {
		err := processor.Process(ctx, queue.Message{EventType: queue.EventApplicationSubmitted, CompanyID: 1})
		Expect(err).NotTo(HaveOccurred())
		Expect(notifier.notices).To(BeEmpty())
	})

	It("retries transient lookup failures", func() {
		companies.getErr = errors.New("timeout")
		appID := int64(500)
		err := processor.Process(ctx, queue.Message{
			EventType:     queue.EventApplicationSubmitted,
			CompanyID:     1,
			ApplicationID: &appID,
		})
		Expect(err).To(MatchError(ContainSubstring("timeout")))
	})

	It("drops unknown event types", func() {
		Expect(processor.Process(ctx, queue.Message{EventType: "mystery"})).To(Succeed())
	})
})
