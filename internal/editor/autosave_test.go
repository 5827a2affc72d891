package editor_test

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/editor"
	"careerline.app/studio/internal/model"
)

var _ = Describe("Autosaver", func() {
	const interval = 30 * time.Second

	var (
		ctx    context.Context
		cancel context.CancelFunc
		api    *fakeAPI
		clock  *clockwork.FakeClock
		ctrl   *editor.Controller
		saver  *editor.Autosaver

		stopped bool
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		api = newFakeAPI()
		api.live = liveSnapshot()
		clock = clockwork.NewFakeClock()

		loaded, err := editor.Load(ctx, api, 1)
		Expect(err).NotTo(HaveOccurred())
		ctrl = editor.NewController(api, 1, loaded, editor.WithClock(clock))

		saver = editor.NewAutosaver(ctrl, clock, interval)
		stopped = false
		go saver.Run(ctx)
		Expect(clock.BlockUntilContext(ctx, 1)).To(Succeed())
	})

	AfterEach(func() {
		cancel()
		if !stopped {
			saver.Stop()
		}
	})

	// blockSaves makes every SaveDraft signal entered and wait for release.
	blockSaves := func() (entered chan struct{}, release chan struct{}) {
		entered = make(chan struct{}, 10)
		release = make(chan struct{})
		api.saveFn = func(context.Context, model.Snapshot) error {
			entered <- struct{}{}
			<-release
			return nil
		}
		return entered, release
	}

	It("does nothing while the state is clean", func() {
		seeded := api.saveCount()
		clock.Advance(interval)
		Consistently(api.saveCount, 100*time.Millisecond).Should(Equal(seeded))
	})

	It("saves dirty state on the next tick", func() {
		seeded := api.saveCount()
		Expect(ctrl.SetField(editor.FieldTagline, "autosaved")).To(Succeed())

		clock.Advance(interval)
		Eventually(api.saveCount).Should(Equal(seeded + 1))
		Eventually(ctrl.Dirty).Should(BeFalse())
	})

	It("never has more than one save in flight", func() {
		seeded := api.saveCount()
		entered := make(chan struct{}, 10)
		release := make(chan struct{})
		api.saveFn = func(context.Context, model.Snapshot) error {
			entered <- struct{}{}
			<-release
			return nil
		}
		Expect(ctrl.SetField(editor.FieldTagline, "slow")).To(Succeed())

		clock.Advance(interval)
		Eventually(entered).Should(Receive())

		for range 3 {
			Expect(ctrl.SetField(editor.FieldTagline, "still editing")).To(Succeed())
			clock.Advance(interval)
		}
		Consistently(entered, 200*time.Millisecond).ShouldNot(Receive())
		Expect(api.saveCount()).To(Equal(seeded + 1))

		close(release)
		Eventually(ctrl.Saving).Should(BeFalse())
		Expect(api.maxInFlight()).To(Equal(1))

		// The edits made during the slow save are picked up by a later tick.
		Expect(ctrl.Dirty()).To(BeTrue())
		clock.Advance(interval)
		Eventually(api.saveCount).Should(Equal(seeded + 2))
	})

	It("skips ticks while a manual save is in flight", func() {
		seeded := api.saveCount()
		entered, release := blockSaves()
		Expect(ctrl.SetField(editor.FieldTagline, "manual")).To(Succeed())

		saved := make(chan error, 1)
		go func() { saved <- ctrl.Save(ctx) }()
		Eventually(entered).Should(Receive())

		Expect(ctrl.SetField(editor.FieldTagline, "edited during manual save")).To(Succeed())
		clock.Advance(interval)
		Consistently(entered, 200*time.Millisecond).ShouldNot(Receive())
		Expect(api.saveCount()).To(Equal(seeded + 1))

		close(release)
		Eventually(saved).Should(Receive(BeNil()))
		Expect(api.maxInFlight()).To(Equal(1))
		Expect(ctrl.Dirty()).To(BeTrue())
	})

	It("makes a manual save wait for an in-flight autosave", func() {
		seeded := api.saveCount()
		entered, release := blockSaves()
		Expect(ctrl.SetField(editor.FieldTagline, "autosaving")).To(Succeed())

		clock.Advance(interval)
		Eventually(entered).Should(Receive())

		saved := make(chan error, 1)
		go func() { saved <- ctrl.Save(ctx) }()
		Consistently(entered, 200*time.Millisecond).ShouldNot(Receive())
		Expect(api.saveCount()).To(Equal(seeded + 1))
		Expect(saved).NotTo(Receive())

		close(release)
		Eventually(saved).Should(Receive(BeNil()))
		Expect(api.saveCount()).To(Equal(seeded + 2))
		Expect(api.maxInFlight()).To(Equal(1))
	})

	It("waits for an in-flight autosave on Stop", func() {
		entered, release := blockSaves()
		Expect(ctrl.SetField(editor.FieldTagline, "stopping")).To(Succeed())

		clock.Advance(interval)
		Eventually(entered).Should(Receive())

		done := make(chan struct{})
		go func() {
			saver.Stop()
			close(done)
		}()
		stopped = true
		Consistently(done, 200*time.Millisecond).ShouldNot(BeClosed())

		close(release)
		Eventually(done).Should(BeClosed())
		Expect(ctrl.Saving()).To(BeFalse())
		Expect(ctrl.Dirty()).To(BeFalse())
	})
})
