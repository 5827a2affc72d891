package editor_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/editor"
	"careerline.app/studio/internal/model"
)

var _ = Describe("Load", func() {
	var (
		ctx context.Context
		api *fakeAPI
	)

	BeforeEach(func() {
		ctx = context.Background()
		api = newFakeAPI()
		api.live = liveSnapshot()
	})

	It("seeds a missing draft with the live snapshot verbatim", func() {
		loaded, err := editor.Load(ctx, api, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Seeded).To(BeTrue())
		Expect(loaded.Snapshot).To(Equal(*liveSnapshot()))

		Expect(api.draft).NotTo(BeNil())
		Expect(api.draft.Snapshot).To(Equal(*liveSnapshot()))
		Expect(loaded.UpdatedAt).To(Equal(api.draft.UpdatedAt))
	})

	It("returns an existing draft without touching it", func() {
		api.draft = &model.Draft{
			CompanyID: 1,
			Snapshot:  model.Snapshot{Company: model.Company{ID: 1, Name: "Draft Name"}},
		}

		loaded, err := editor.Load(ctx, api, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Seeded).To(BeFalse())
		Expect(loaded.Snapshot.Company.Name).To(Equal("Draft Name"))
		Expect(api.saveCount()).To(BeZero())
	})

	It("falls back to live content when seeding fails", func() {
		api.saveFn = func(context.Context, model.Snapshot) error {
			return errors.New("write failed")
		}

		loaded, err := editor.Load(ctx, api, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded.Seeded).To(BeTrue())
		Expect(loaded.Snapshot).To(Equal(*liveSnapshot()))
		Expect(api.draft).To(BeNil())
	})

	It("fails when the company does not exist", func() {
		api.live = nil

		_, err := editor.Load(ctx, api, 1)
		Expect(err).To(HaveOccurred())
	})

	It("fails when the draft cannot be read", func() {
		api.fetchDraftErr = errors.New("connection refused")

		_, err := editor.Load(ctx, api, 1)
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
	})
})
