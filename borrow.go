package bintree

import "sync"

// borrowCell is the per-tree borrow account: it counts outstanding shared
// views and flags an outstanding exclusive view. It replaces the static half
// of the aliasing discipline — many readers XOR one writer — with an explicit
// runtime account, while the membership walk in IntoMut supplies the dynamic
// half.
//
// The cell is an aliasing guard, not a synchronization primitive: it makes
// conflicting access requests fail, it does not make them wait.
type borrowCell struct {
	mu sync.Mutex
	// state > 0 counts shared borrows, state == exclusiveBorrow flags the
	// single exclusive borrow, state == 0 means unborrowed.
	state int
}

const exclusiveBorrow = -1

func (c *borrowCell) acquireShared() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == exclusiveBorrow {
		return ErrTreeBorrowed
	}
	c.state++
	return nil
}

func (c *borrowCell) releaseShared() {
	c.mu.Lock()
	defer c.mu.Unlock()
	assert(c.state > 0, "released a shared borrow that was never acquired")
	c.state--
}

func (c *borrowCell) acquireExclusive() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != 0 {
		return ErrTreeBorrowed
	}
	c.state = exclusiveBorrow
	return nil
}

func (c *borrowCell) releaseExclusive() {
	c.mu.Lock()
	defer c.mu.Unlock()
	assert(c.state == exclusiveBorrow, "released an exclusive borrow that was never acquired")
	c.state = 0
}

// upgrade turns the sole outstanding shared borrow into the exclusive
// borrow. It fails while other shared borrows are live.
func (c *borrowCell) upgrade() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	assert(c.state != 0, "upgrade without an outstanding shared borrow")
	if c.state != 1 {
		return ErrTreeBorrowed
	}
	c.state = exclusiveBorrow
	return nil
}

// isFree reports whether no borrow is outstanding.
func (c *borrowCell) isFree() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == 0
}
