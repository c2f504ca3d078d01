package task

import (
	"sync/atomic"
)

// node is one link in the Treiber stack. It is never mutated in place
// once published: push installs a brand-new node whose next already
// points at the snapshot it was built from, and pop only ever reads
// node.next, never writes it.
type node struct {
	task Task
	next *node
}

// head is an immutable snapshot of ConcurrentPool's top-of-stack: a
// pointer plus a 16-bit generation tag. Every successful push or pop
// installs a freshly allocated *head with tag = old.tag+1 (mod 2^16),
// which is the Go-idiomatic rendering of a packed (pointer<<16 | counter)
// word from a C-family ABA-mitigation scheme: the tag exists mostly for
// observability (see Tag, used by tests), not because Go's GC can hand a
// stale CAS participant a reused, equal-looking *head — it won't, since
// the old snapshot stays reachable (and therefore unreclaimed) for as
// long as any goroutine holds a *head pointer to it.
type head struct {
	top *node
	tag uint16
}

// ConcurrentPool is a lock-free Treiber stack of Task values shared by all
// workers of a ParallelRunner. Every operation is non-blocking.
//
// ConcurrentPool does not implement Indexable: indexed access on the
// concurrent pool is a programmer error that must fail loudly, so the
// type simply doesn't offer the method.
type ConcurrentPool struct {
	head atomic.Pointer[head]
	size atomic.Int64
}

// NewConcurrentPool returns an empty ConcurrentPool.
func NewConcurrentPool() *ConcurrentPool {
	p := &ConcurrentPool{}
	p.head.Store(&head{})
	return p
}

// Push allocates a node for t and swings the head to it, retrying the CAS
// until it wins.
func (p *ConcurrentPool) Push(t Task) error {
	n := &node{task: t}
	for {
		old := p.head.Load()
		n.next = old.top
		next := &head{top: n, tag: old.tag + 1}
		if p.head.CompareAndSwap(old, next) {
			p.size.Add(1)
			return nil
		}
	}
}

// Pop removes and returns the most recently pushed task. It returns
// (nil, false) immediately if the pool is empty; it never blocks.
func (p *ConcurrentPool) Pop() (Task, bool) {
	for {
		old := p.head.Load()
		if old.top == nil {
			return nil, false
		}
		next := &head{top: old.top.next, tag: old.tag + 1}
		if p.head.CompareAndSwap(old, next) {
			p.size.Add(-1)
			return old.top.task, true
		}
	}
}

// Clear detaches the entire chain in a single CAS. It is only valid to
// call Clear when no other goroutine is concurrently pushing or popping.
func (p *ConcurrentPool) Clear() {
	old := p.head.Load()
	p.head.CompareAndSwap(old, &head{tag: old.tag + 1})
	p.size.Store(0)
}

// Size returns the advisory element count.
func (p *ConcurrentPool) Size() int {
	return int(p.size.Load())
}

// Empty reports whether the pool currently has no top node. Like Size, it
// is a snapshot that may be stale by the time the caller acts on it.
func (p *ConcurrentPool) Empty() bool {
	return p.head.Load().top == nil
}

// Tag exposes the current generation counter for tests that want to
// observe ABA-mitigation behavior directly; it is not part of the Pool
// contract.
func (p *ConcurrentPool) Tag() uint16 {
	return p.head.Load().tag
}
