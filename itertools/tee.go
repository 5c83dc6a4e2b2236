package itertools

import "iter"

// Tee returns n independent sequences reading the same source.
//
// The source is pulled once; items are buffered until the slowest of the n
// copies has read them. Each returned sequence is one-shot: ranging over it
// again resumes where the previous range stopped.
//
// The source is released as soon as every copy has been ranged over and no
// range is in progress, even when they all stopped early. Ranging a copy
// after that yields only the items still buffered for it.
//
// The copies share state and must not be read from different goroutines.
func Tee[T any](seq iter.Seq[T], n int) []iter.Seq[T] {
	if n <= 0 {
		return nil
	}
	t := &teeBuffer[T]{
		seq:     seq,
		pos:     make([]int, n),
		ranging: make([]int, n),
		started: make([]bool, n),
	}
	out := make([]iter.Seq[T], n)
	for i := range out {
		out[i] = func(yield func(T) bool) {
			t.started[i] = true
			t.ranging[i]++
			defer t.leave(i)
			for {
				v, ok := t.read(i)
				if !ok || !yield(v) {
					return
				}
			}
		}
	}
	return out
}

type teeBuffer[T any] struct {
	seq  iter.Seq[T]
	next func() (T, bool)
	stop func()
	buf  []T
	base int   // absolute position of buf[0]
	pos  []int // absolute position of each reader
	done bool

	ranging []int // ranges in progress per reader
	started []bool
}

func (t *teeBuffer[T]) read(i int) (T, bool) {
	var zero T
	p := t.pos[i]
	if p-t.base < len(t.buf) {
		v := t.buf[p-t.base]
		t.pos[i]++
		t.trim()
		return v, true
	}
	if t.done {
		return zero, false
	}
	if t.next == nil {
		t.next, t.stop = iter.Pull(t.seq)
	}
	v, ok := t.next()
	if !ok {
		t.release()
		return zero, false
	}
	t.buf = append(t.buf, v)
	t.pos[i]++
	t.trim()
	return v, true
}

// trim drops the items every reader has already seen.
func (t *teeBuffer[T]) trim() {
	lowest := t.pos[0]
	for _, p := range t.pos[1:] {
		lowest = min(lowest, p)
	}
	if drop := lowest - t.base; drop > 0 {
		clear(t.buf[:drop])
		t.buf = t.buf[drop:]
		t.base = lowest
	}
}

// leave ends one range of reader i and releases the source once every
// reader has started and none is ranging.
func (t *teeBuffer[T]) leave(i int) {
	t.ranging[i]--
	for j, started := range t.started {
		if !started || t.ranging[j] > 0 {
			return
		}
	}
	t.release()
}

func (t *teeBuffer[T]) release() {
	if t.done {
		return
	}
	t.done = true
	if t.stop != nil {
		t.stop()
	}
}
