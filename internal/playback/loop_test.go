package playback_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collatz/internal/playback"
)

var _ = Describe("Loop", func() {
	var (
		loop   *playback.Loop
		cancel context.CancelFunc
		done   chan struct{}
	)

	BeforeEach(func() {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		loop = playback.NewLoop()
		done = make(chan struct{})
		go func() {
			defer close(done)
			_ = loop.Run(ctx)
		}()
	})

	AfterEach(func() {
		cancel()
		Eventually(done).Should(BeClosed())
	})

	It("runs posted functions in order", func() {
		var got []int
		for i := 0; i < 5; i++ {
			i := i
			Expect(loop.Post(func() { got = append(got, i) })).To(BeTrue())
		}
		Expect(loop.Do(func() {})).To(BeTrue())
		Expect(got).To(Equal([]int{0, 1, 2, 3, 4}))
	})

	It("drives a controller to the end of a sequence", func() {
		var (
			ctrl    *playback.Controller
			loadErr error
			playErr error
		)
		seq := mustCompute(27)
		finished := make(chan struct{})
		loop.Do(func() {
			ctrl = playback.New(loop, playback.WithInterval(1), playback.WithListener(func(s playback.Snapshot) {
				if s.AtEnd() && !s.Playing {
					close(finished)
				}
			}))
			loadErr = ctrl.Load(seq)
			playErr = ctrl.Play()
		})
		Expect(loadErr).NotTo(HaveOccurred())
		Expect(playErr).NotTo(HaveOccurred())
		Eventually(finished, 5*time.Second).Should(BeClosed())

		var snap playback.Snapshot
		loop.Do(func() { snap = ctrl.Snapshot() })
		Expect(snap.Cursor).To(Equal(111))
		Expect(snap.Playing).To(BeFalse())
	})

	It("drops ticks after Pause", func() {
		var (
			ctrl    *playback.Controller
			playErr error
		)
		seq := mustCompute(27)
		loop.Do(func() {
			ctrl = playback.New(loop, playback.WithInterval(5))
			_ = ctrl.Load(seq)
			playErr = ctrl.Play()
			ctrl.Pause()
		})
		Expect(playErr).NotTo(HaveOccurred())
		time.Sleep(30 * time.Millisecond)

		var cursor int
		loop.Do(func() { cursor = ctrl.Snapshot().Cursor })
		Expect(cursor).To(Equal(0))
	})

	It("refuses work after it stops", func() {
		cancel()
		Eventually(done).Should(BeClosed())
		Expect(loop.Post(func() {})).To(BeFalse())
	})
})
