package worker_test

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"careerline.app/studio/internal/queue"
	"careerline.app/studio/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		ctx       context.Context
		cancel    context.CancelFunc
		consumer  *mockConsumer
		processor *mockProcessor
		w         *worker.Worker
		done      chan error
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		consumer = &mockConsumer{}
		processor = &mockProcessor{}
		w = worker.New(consumer, processor, worker.Config{MaxAttempts: 3, ErrorBackoff: 10 * time.Millisecond})
		done = make(chan error, 1)
	})

	AfterEach(func() {
		cancel()
	})

	start := func() {
		go func(w *worker.Worker, ctx context.Context, done chan<- error) {
			done <- w.Run(ctx)
		}(w, ctx, done)
	}

	It("acks processed messages", func() {
		consumer.batches = [][]queue.Message{{{ID: "1-0", EventType: queue.EventPagePublished, CompanyID: 1}}}
		start()

		Eventually(func() []string { acked, _, _ := consumer.snapshot(); return acked }).Should(Equal([]string{"1-0"}))
		w.Stop()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("requeues failures until max attempts, then dead-letters them", func() {
		processor.processFn = func(context.Context, queue.Message) error {
			return errors.New("boom")
		}
		consumer.batches = [][]queue.Message{{
			{ID: "1-0", EventType: queue.EventPagePublished, Attempt: 1},
			{ID: "2-0", EventType: queue.EventPagePublished, Attempt: 3},
		}}
		start()

		Eventually(func() []string { _, _, dlq := consumer.snapshot(); return dlq }).Should(Equal([]string{"2-0"}))
		acked, requeued, _ := consumer.snapshot()
		Expect(requeued).To(Equal([]string{"1-0"}))
		Expect(acked).To(BeEmpty())
		w.Stop()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("recovers from panics in the processor", func() {
		processor.processFn = func(context.Context, queue.Message) error {
			panic("nil map")
		}
		consumer.batches = [][]queue.Message{{{ID: "1-0", EventType: queue.EventPagePublished, Attempt: 1}}}
		start()

		Eventually(func() []string { _, requeued, _ := consumer.snapshot(); return requeued }).Should(Equal([]string{"1-0"}))
		w.Stop()
		Eventually(done).Should(Receive(BeNil()))
	})

	It("keeps running after read errors until cancelled", func() {
		consumer.readErr = errors.New("connection reset")
		start()

		Consistently(done, 50*time.Millisecond).ShouldNot(Receive())
		cancel()
		Eventually(done).Should(Receive(MatchError(context.Canceled)))
	})
})

var _ = Describe("SessionJanitor", func() {
	It("purges expired sessions on every tick", func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		clock := clockwork.NewFakeClock()
		purger := &mockPurger{}
		janitor := worker.NewSessionJanitor(purger, clock, time.Hour)
		go janitor.Run(ctx)
		Expect(clock.BlockUntilContext(ctx, 1)).To(Succeed())

		clock.Advance(time.Hour)
		Eventually(purger.count).Should(Equal(1))
		clock.Advance(time.Hour)
		Eventually(purger.count).Should(Equal(2))

		janitor.Stop()
	})
})
