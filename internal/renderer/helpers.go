package renderer

// Unwind is a LIFO stack of cleanup functions.
type Unwind []func()

func (u *Unwind) Add(cleanup func()) {
	*u = append(*u, cleanup)
}

// Unwind runs the cleanups in reverse order and empties the stack.
func (u *Unwind) Unwind() {
	s := *u
	for i := len(s) - 1; i >= 0; i-- {
		s[i]()
	}
	*u = s[:0]
}

// Discard drops the cleanups without running them.
func (u *Unwind) Discard() {
	*u = (*u)[:0]
}

func (u Unwind) Len() int {
	return len(u)
}
