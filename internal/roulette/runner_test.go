package roulette_test

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/roulette/internal/roulette"
)

type recorder struct {
	mu     sync.Mutex
	events []roulette.Event
}

func (r *recorder) observe(ev roulette.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) snapshot() []roulette.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]roulette.Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recorder) count(kind roulette.EventKind) int {
	n := 0
	for _, ev := range r.snapshot() {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

var items = []roulette.Item{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}}

var _ = Describe("Runner", func() {
	var (
		mock   *clock.Mock
		rec    *recorder
		runner *roulette.Runner
	)

	newRunner := func(opts ...roulette.RunnerOption) *roulette.Runner {
		anim, err := roulette.NewAnimator(items, roulette.NewPicker(7))
		Expect(err).NotTo(HaveOccurred())
		opts = append([]roulette.RunnerOption{
			roulette.WithClock(mock),
			roulette.WithObserver(rec.observe),
		}, opts...)
		return roulette.NewRunner(anim, opts...)
	}

	finished := func() bool {
		mock.Add(25 * time.Millisecond)
		return runner.State().Selected != nil
	}

	BeforeEach(func() {
		mock = clock.NewMock()
		rec = &recorder{}
		runner = newRunner()
	})

	AfterEach(func() {
		runner.Stop()
	})

	It("cycles round-robin and settles on the planned item", func() {
		Expect(runner.TriggerPlan(roulette.Plan{FinalIndex: 2, TotalSteps: 30})).To(BeTrue())
		Eventually(finished).WithTimeout(10 * time.Second).WithPolling(time.Millisecond).Should(BeTrue())

		events := rec.snapshot()
		Expect(events[0].Kind).To(Equal(roulette.EventStarted))
		Expect(events[0].State.Animating).To(BeTrue())
		Expect(events[0].State.Selected).To(BeNil())

		steps := events[1:]
		Expect(steps).To(HaveLen(30))
		for i, ev := range steps {
			Expect(ev.Kind).To(Equal(roulette.EventStepped))
			Expect(ev.Tick.Index).To(Equal(i % 4))
			Expect(ev.Tick.Done).To(Equal(i == 29))
		}

		final := runner.State()
		Expect(final.Animating).To(BeFalse())
		Expect(final.CurrentIndex).To(Equal(2))
		Expect(*final.Selected).To(Equal(roulette.Item{ID: 3, Name: "C"}))
	})

	It("ignores a trigger while a run is in progress", func() {
		Expect(runner.TriggerPlan(roulette.Plan{FinalIndex: 0, TotalSteps: 31})).To(BeTrue())
		mock.Add(60 * time.Millisecond)
		Expect(runner.Trigger()).To(BeFalse())
		Expect(runner.TriggerPlan(roulette.Plan{FinalIndex: 1, TotalSteps: 30})).To(BeFalse())

		Eventually(finished).WithTimeout(10 * time.Second).WithPolling(time.Millisecond).Should(BeTrue())
		Expect(rec.count(roulette.EventStarted)).To(Equal(1))
		Expect(rec.count(roulette.EventStepped)).To(Equal(31))
		Expect(runner.State().Selected.ID).To(Equal(1))
	})

	It("returns the selection from Wait", func() {
		Expect(runner.TriggerPlan(roulette.Plan{FinalIndex: 3, TotalSteps: 35})).To(BeTrue())
		Eventually(finished).WithTimeout(10 * time.Second).WithPolling(time.Millisecond).Should(BeTrue())

		item, err := runner.Wait(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(item).To(Equal(roulette.Item{ID: 4, Name: "D"}))
		Eventually(runner.Done()).Should(BeClosed())
	})

	It("starts a fresh run after completion", func() {
		Expect(runner.Trigger()).To(BeTrue())
		Eventually(finished).WithTimeout(10 * time.Second).WithPolling(time.Millisecond).Should(BeTrue())

		Expect(runner.Trigger()).To(BeTrue())
		state := runner.State()
		Expect(state.Animating).To(BeTrue())
		Expect(state.Selected).To(BeNil())
	})

	It("stops a run in progress and drops its pending step", func() {
		Expect(runner.TriggerPlan(roulette.Plan{FinalIndex: 1, TotalSteps: 40})).To(BeTrue())
		Eventually(func() int {
			mock.Add(10 * time.Millisecond)
			return rec.count(roulette.EventStepped)
		}).WithTimeout(5 * time.Second).WithPolling(time.Millisecond).Should(BeNumerically(">=", 3))

		runner.Stop()
		stepped := rec.count(roulette.EventStepped)
		Expect(rec.count(roulette.EventStopped)).To(Equal(1))

		mock.Add(time.Minute)
		Consistently(func() int { return rec.count(roulette.EventStepped) }).
			WithTimeout(50 * time.Millisecond).Should(Equal(stepped))

		state := runner.State()
		Expect(state.Animating).To(BeFalse())
		Expect(state.Selected).To(BeNil())

		_, err := runner.Wait(context.Background())
		Expect(err).To(MatchError(roulette.ErrStopped))
	})

	It("treats Stop as idempotent and keeps a finished selection", func() {
		runner.Stop()
		Expect(runner.TriggerPlan(roulette.Plan{FinalIndex: 0, TotalSteps: 30})).To(BeTrue())
		Eventually(finished).WithTimeout(10 * time.Second).WithPolling(time.Millisecond).Should(BeTrue())

		runner.Stop()
		runner.Stop()
		Expect(rec.count(roulette.EventStopped)).To(BeZero())
		Expect(runner.State().Selected.ID).To(Equal(1))
	})

	It("reports a closed Done channel before any run", func() {
		Expect(runner.Done()).To(BeClosed())
	})

	It("reports ErrNoRun from Wait before any trigger", func() {
		_, err := runner.Wait(context.Background())
		Expect(err).To(MatchError(roulette.ErrNoRun))
	})

	It("honors context cancellation in Wait", func() {
		Expect(runner.Trigger()).To(BeTrue())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := runner.Wait(ctx)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("scales step delays", func() {
		runner = newRunner(roulette.WithTimeScale(2))
		Expect(runner.Trigger()).To(BeTrue())

		mock.Add(99 * time.Millisecond)
		Consistently(func() int { return rec.count(roulette.EventStepped) }).
			WithTimeout(20 * time.Millisecond).Should(BeZero())

		mock.Add(time.Millisecond)
		Eventually(func() int { return rec.count(roulette.EventStepped) }).Should(Equal(1))
	})
})
