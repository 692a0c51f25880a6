package bestfirst

// item is one frontier entry. seq is the insertion sequence number and breaks
// priority ties so that equal-priority states leave in insertion order.
type item[S comparable] struct {
	state    S
	priority float64
	seq      uint64
}

// frontier is a min-heap of items ordered by (priority, seq).
// Stale duplicates are tolerated: a state may be pushed several times and the
// runner skips entries whose state is already closed.
type frontier[S comparable] []item[S]

func (f frontier[S]) Len() int { return len(f) }

func (f frontier[S]) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

func (f frontier[S]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[S]) Push(x any) { *f = append(*f, x.(item[S])) }

func (f *frontier[S]) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]

	return it
}
