package collatz

// Stats summarises a sequence for the statistics panel.
type Stats struct {
	Start      int64
	Steps      int
	Max        int64
	MaxIndex   int
	OddCount   int
	EvenCount  int
	ReachedOne bool
}

func ComputeStats(s Sequence) Stats {
	st := Stats{
		Start:      s.Start(),
		Steps:      s.Steps(),
		ReachedOne: s.Len() > 0 && s.Last() == 1,
	}
	st.MaxIndex, st.Max = s.peak()
	for _, v := range s.values {
		if v%2 == 0 {
			st.EvenCount++
		} else {
			st.OddCount++
		}
	}
	return st
}
