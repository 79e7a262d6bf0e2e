package playback_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/playback"
)

func mustCompute(n int64) collatz.Sequence {
	seq, _, err := collatz.Compute(n, collatz.DefaultCap)
	Expect(err).NotTo(HaveOccurred())
	return seq
}

var _ = Describe("Controller", func() {
	var (
		sched *playback.ManualScheduler
		ctrl  *playback.Controller
		snaps []playback.Snapshot
	)

	BeforeEach(func() {
		sched = playback.NewManualScheduler()
		snaps = nil
		ctrl = playback.New(sched, playback.WithListener(func(s playback.Snapshot) {
			snaps = append(snaps, s)
		}))
	})

	Context("when empty", func() {
		It("starts in the Empty state", func() {
			Expect(ctrl.State()).To(Equal(playback.Empty))
			Expect(ctrl.Snapshot().Progress()).To(BeZero())
		})

		It("rejects operations that need a sequence", func() {
			Expect(ctrl.Play()).To(MatchError(playback.ErrNoSequence))
			Expect(ctrl.Step(1)).To(MatchError(playback.ErrNoSequence))
			Expect(ctrl.SeekToStep(3)).To(MatchError(playback.ErrNoSequence))
			Expect(ctrl.Reset()).To(MatchError(playback.ErrNoSequence))
			Expect(snaps).To(BeEmpty())
		})

		It("treats Pause as a no-op", func() {
			ctrl.Pause()
			Expect(snaps).To(BeEmpty())
		})

		It("rejects an empty sequence", func() {
			Expect(ctrl.Load(collatz.Sequence{})).To(MatchError(playback.ErrInvalidInput))
			Expect(ctrl.State()).To(Equal(playback.Empty))
		})
	})

	Context("after Load", func() {
		var seq collatz.Sequence

		BeforeEach(func() {
			seq = mustCompute(6)
			Expect(ctrl.Load(seq)).To(Succeed())
		})

		It("is Idle at cursor 0 and notifies once", func() {
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(snaps).To(HaveLen(1))
			Expect(snaps[0].Cursor).To(Equal(0))
			Expect(snaps[0].Playing).To(BeFalse())
		})

		It("stays at cursor 0 after an immediate Pause", func() {
			ctrl.Pause()
			s := ctrl.Snapshot()
			Expect(s.Cursor).To(Equal(0))
			Expect(s.Playing).To(BeFalse())
		})

		It("clamps Step at both ends", func() {
			for i := 0; i < 50; i++ {
				Expect(ctrl.Step(1)).To(Succeed())
				Expect(ctrl.Snapshot().Cursor).To(BeNumerically("<=", seq.Len()-1))
			}
			Expect(ctrl.Snapshot().Cursor).To(Equal(seq.Len() - 1))

			for i := 0; i < 50; i++ {
				Expect(ctrl.Step(-1)).To(Succeed())
				Expect(ctrl.Snapshot().Cursor).To(BeNumerically(">=", 0))
			}
			Expect(ctrl.Snapshot().Cursor).To(Equal(0))
		})

		It("rejects step directions other than one", func() {
			Expect(ctrl.Step(2)).To(MatchError(playback.ErrInvalidInput))
			Expect(ctrl.Step(0)).To(MatchError(playback.ErrInvalidInput))
		})

		It("clamps SeekToStep", func() {
			Expect(ctrl.SeekToStep(4)).To(Succeed())
			Expect(ctrl.Snapshot().Cursor).To(Equal(4))
			Expect(ctrl.SeekToStep(1000)).To(Succeed())
			Expect(ctrl.Snapshot().Cursor).To(Equal(seq.Len() - 1))
			Expect(ctrl.SeekToStep(-3)).To(Succeed())
			Expect(ctrl.Snapshot().Cursor).To(Equal(0))
		})

		It("reports progress as cursor over len-1", func() {
			Expect(ctrl.SeekToStep(4)).To(Succeed())
			Expect(ctrl.Snapshot().Progress()).To(BeNumerically("~", 4.0/float64(seq.Len()-1)))
			Expect(ctrl.Snapshot().Visible()).To(HaveLen(5))
		})

		It("keeps state when SetStepIntervalMs fails", func() {
			before := ctrl.Snapshot()
			n := len(snaps)
			Expect(ctrl.SetStepIntervalMs(0)).To(MatchError(playback.ErrInvalidInput))
			Expect(ctrl.SetStepIntervalMs(-1)).To(MatchError(playback.ErrInvalidInput))
			Expect(ctrl.Snapshot().IntervalMs).To(Equal(before.IntervalMs))
			Expect(snaps).To(HaveLen(n))
		})

		It("keeps the scale mode across loads", func() {
			ctrl.SetScaleMode(playback.Linear)
			Expect(ctrl.Load(mustCompute(27))).To(Succeed())
			Expect(ctrl.Snapshot().Scale).To(Equal(playback.Linear))
			ctrl.ToggleScale()
			Expect(ctrl.Snapshot().Scale).To(Equal(playback.Logarithmic))
		})
	})

	Context("while playing", func() {
		var seq collatz.Sequence

		BeforeEach(func() {
			seq = mustCompute(27)
			Expect(ctrl.Load(seq)).To(Succeed())
			Expect(ctrl.Play()).To(Succeed())
		})

		It("schedules exactly one tick", func() {
			Expect(ctrl.State()).To(Equal(playback.Playing))
			Expect(sched.Pending()).To(Equal(1))
			Expect(sched.LastDelay()).To(Equal(playback.DefaultIntervalMs * time.Millisecond))
		})

		It("ignores a second Play", func() {
			n := len(snaps)
			Expect(ctrl.Play()).To(Succeed())
			Expect(sched.Pending()).To(Equal(1))
			Expect(snaps).To(HaveLen(n))
		})

		It("advances one element per tick", func() {
			Expect(sched.Fire()).To(BeTrue())
			Expect(ctrl.Snapshot().Cursor).To(Equal(1))
			Expect(sched.Pending()).To(Equal(1))
		})

		It("keeps a single pending tick when Tick is called directly", func() {
			for i := 0; i < 3; i++ {
				Expect(ctrl.Tick()).To(Succeed())
				Expect(sched.Pending()).To(Equal(1))
			}
			Expect(ctrl.Snapshot().Cursor).To(Equal(3))

			Expect(sched.Fire()).To(BeTrue())
			Expect(ctrl.Snapshot().Cursor).To(Equal(4))
			Expect(sched.Pending()).To(Equal(1))
		})

		It("reaches the end and stops through direct ticks", func() {
			for ctrl.State() == playback.Playing {
				Expect(ctrl.Tick()).To(Succeed())
				Expect(sched.Pending()).To(BeNumerically("<=", 1))
			}
			Expect(ctrl.Snapshot().Cursor).To(Equal(seq.Len() - 1))
			Expect(sched.Pending()).To(BeZero())
		})

		It("stops exactly at the last element", func() {
			for sched.Fire() {
				s := ctrl.Snapshot()
				Expect(s.Cursor).To(BeNumerically("<=", seq.Len()-1))
				Expect(s.Playing).To(Equal(s.Cursor < seq.Len()-1))
			}
			s := ctrl.Snapshot()
			Expect(s.Cursor).To(Equal(seq.Len() - 1))
			Expect(s.Playing).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
			Expect(ctrl.Tick()).To(MatchError(playback.ErrNotPlaying))
		})

		It("rewinds when played again from the end", func() {
			for sched.Fire() {
			}
			Expect(ctrl.Play()).To(Succeed())
			Expect(ctrl.Snapshot().Cursor).To(Equal(0))
			Expect(ctrl.State()).To(Equal(playback.Playing))
		})

		It("cancels the pending tick on Pause", func() {
			ctrl.Pause()
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(sched.Pending()).To(BeZero())
			Expect(sched.Fire()).To(BeFalse())
		})

		It("cancels the pending tick on Step and SeekToStep", func() {
			Expect(ctrl.Step(1)).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(sched.Pending()).To(BeZero())

			Expect(ctrl.Play()).To(Succeed())
			Expect(ctrl.SeekToStep(10)).To(Succeed())
			Expect(ctrl.Snapshot().Cursor).To(Equal(10))
			Expect(sched.Pending()).To(BeZero())
		})

		It("cancels the pending tick on Load", func() {
			Expect(sched.Fire()).To(BeTrue())
			Expect(ctrl.Load(mustCompute(7))).To(Succeed())
			s := ctrl.Snapshot()
			Expect(s.Cursor).To(Equal(0))
			Expect(s.Playing).To(BeFalse())
			Expect(sched.Pending()).To(BeZero())
		})

		It("applies a new interval to the next tick only", func() {
			Expect(ctrl.SetStepIntervalMs(40)).To(Succeed())
			Expect(sched.LastDelay()).To(Equal(playback.DefaultIntervalMs * time.Millisecond))
			Expect(sched.Pending()).To(Equal(1))

			Expect(sched.Fire()).To(BeTrue())
			Expect(sched.LastDelay()).To(Equal(40 * time.Millisecond))
		})

		It("paces ticks by the interval", func() {
			Expect(sched.Advance(3 * playback.DefaultIntervalMs * time.Millisecond)).To(Equal(3))
			Expect(ctrl.Snapshot().Cursor).To(Equal(3))
		})

		It("toggles back to Idle", func() {
			Expect(ctrl.Toggle()).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(ctrl.Toggle()).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Playing))
		})

		It("emits one notification per tick", func() {
			n := len(snaps)
			sched.Fire()
			Expect(snaps).To(HaveLen(n + 1))
		})
	})

	Context("with a one-element sequence", func() {
		It("does not start playing", func() {
			Expect(ctrl.Load(mustCompute(1))).To(Succeed())
			Expect(ctrl.Play()).To(Succeed())
			Expect(ctrl.State()).To(Equal(playback.Idle))
			Expect(sched.Pending()).To(BeZero())
			Expect(ctrl.Snapshot().Progress()).To(Equal(1.0))
		})
	})

	Describe("Subscribe", func() {
		It("stops delivering after unsubscribe", func() {
			var extra int
			unsubscribe := ctrl.Subscribe(func(playback.Snapshot) { extra++ })
			Expect(ctrl.Load(mustCompute(6))).To(Succeed())
			unsubscribe()
			Expect(ctrl.Step(1)).To(Succeed())
			Expect(extra).To(Equal(1))
		})
	})

	Describe("Snapshot", func() {
		It("describes the next operation", func() {
			Expect(ctrl.Load(collatz.NewSequence([]int64{6, 3, 10, 5}))).To(Succeed())
			op, ok := ctrl.Snapshot().NextOp()
			Expect(ok).To(BeTrue())
			Expect(op.Kind).To(Equal(collatz.Halve))
			Expect(ctrl.SeekToStep(3)).To(Succeed())
			_, ok = ctrl.Snapshot().NextOp()
			Expect(ok).To(BeFalse())
			Expect(ctrl.Snapshot().AtEnd()).To(BeTrue())
		})
	})
})

var _ = Describe("ParseScaleMode", func() {
	DescribeTable("known names",
		func(in string, want playback.ScaleMode) {
			got, err := playback.ParseScaleMode(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		},
		Entry("linear", "linear", playback.Linear),
		Entry("lin", "LIN", playback.Linear),
		Entry("log", "log", playback.Logarithmic),
		Entry("logarithmic", " Logarithmic ", playback.Logarithmic),
	)

	It("rejects unknown names", func() {
		_, err := playback.ParseScaleMode("cubic")
		Expect(err).To(MatchError(playback.ErrInvalidInput))
	})
})
