package vector

import "errors"

var errCopyFailed = errors.New("copy failed")

// probe counts the lifecycle events of every item sharing it.
type probe struct {
	attempts int // CopyFrom calls
	copies   int // successful copies
	destroys int
	failAt   int // attempt number that fails, 0 for never
}

// failOn makes the n-th next copy attempt fail.
func (p *probe) failOn(n int) {
	p.failAt = p.attempts + n
}

func (p *probe) live() int {
	return p.copies - p.destroys
}

// item is an element type whose copy can fail and whose destruction is
// counted. Destroying an item that was never constructed panics.
type item struct {
	val int
	p   *probe
}

func (it *item) CopyFrom(src *item) error {
	p := src.p
	p.attempts++
	if p.attempts == p.failAt {
		it.val = -1 // half-built; must not survive
		return errCopyFailed
	}
	p.copies++
	*it = *src
	return nil
}

func (it *item) Destroy() {
	if it.p == nil {
		panic("destroying an item that is not live")
	}
	it.p.destroys++
}

func items(v *Vector[item]) []int {
	vals := make([]int, v.Size())
	for i := range vals {
		vals[i] = v.Index(i).val
	}
	return vals
}
