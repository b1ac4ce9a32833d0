package list

import "iter"

// Link is the node embedded in an owning record of type T.
// The zero value is an unlinked link with no owner.
type Link[T any] struct {
	next, prev *Link[T]
	owner      *T
}

// Init makes l a self-referential singleton owned by owner and returns l.
func (l *Link[T]) Init(owner *T) *Link[T] {
	l.next = l
	l.prev = l
	l.owner = owner
	return l
}

// Owner returns the record l is embedded in, as recorded by Init.
func (l *Link[T]) Owner() *T {
	return l.owner
}

// Linked reports whether l is currently spliced into a ring with other links.
func (l *Link[T]) Linked() bool {
	return l.next != nil && l.next != l
}

// Next returns the link after l. For a list member this may be the list's sentinel.
func (l *Link[T]) Next() *Link[T] {
	l.lazyInit()
	return l.next
}

// Prev returns the link before l.
func (l *Link[T]) Prev() *Link[T] {
	l.lazyInit()
	return l.prev
}

func (l *Link[T]) lazyInit() {
	if l.next == nil {
		l.next = l
		l.prev = l
	}
}

// InsertBefore splices n into the ring immediately before l and returns n.
func (l *Link[T]) InsertBefore(n *Link[T]) *Link[T] {
	l.lazyInit()
	n.prev = l.prev
	n.next = l
	l.prev.next = n
	l.prev = n
	return n
}

// InsertAfter splices n into the ring immediately after l and returns n.
func (l *Link[T]) InsertAfter(n *Link[T]) *Link[T] {
	l.lazyInit()
	n.next = l.next
	n.prev = l
	l.next.prev = n
	l.next = n
	return n
}

// Remove splices l out of its ring, resets it to a singleton and returns l.
// The owner is kept so the link can be reinserted without another Init.
func (l *Link[T]) Remove() *Link[T] {
	l.lazyInit()
	l.prev.next = l.next
	l.next.prev = l.prev
	l.next = l
	l.prev = l
	return l
}

// List is a circular list anchored by a sentinel link.
// The zero value is an empty list.
type List[T any] struct {
	root Link[T]
}

// Init empties ls and returns it. Links still threaded on ls are not reset.
func (ls *List[T]) Init() *List[T] {
	ls.root.Init(nil)
	return ls
}

// Root returns the sentinel, usable as an anchor for InsertBefore/InsertAfter.
func (ls *List[T]) Root() *Link[T] {
	ls.root.lazyInit()
	return &ls.root
}

// Empty reports whether ls has no members.
func (ls *List[T]) Empty() bool {
	return ls.root.next == nil || ls.root.next == &ls.root
}

// Front returns the first link, or nil when ls is empty.
func (ls *List[T]) Front() *Link[T] {
	if ls.Empty() {
		return nil
	}
	return ls.root.next
}

// Back returns the last link, or nil when ls is empty.
func (ls *List[T]) Back() *Link[T] {
	if ls.Empty() {
		return nil
	}
	return ls.root.prev
}

// PushFront inserts l right after the sentinel.
func (ls *List[T]) PushFront(l *Link[T]) *Link[T] {
	return ls.Root().InsertAfter(l)
}

// PushBack inserts l right before the sentinel.
func (ls *List[T]) PushBack(l *Link[T]) *Link[T] {
	return ls.Root().InsertBefore(l)
}

// Push treats ls as a stack. It assumes l is not already a member.
func (ls *List[T]) Push(l *Link[T]) *Link[T] {
	return ls.PushFront(l)
}

// Pop removes and returns the most recently pushed link, or nil when ls is empty.
func (ls *List[T]) Pop() *Link[T] {
	if ls.Empty() {
		return nil
	}
	return ls.root.next.Remove()
}

// PopBack removes and returns the last link, or nil when ls is empty.
func (ls *List[T]) PopBack() *Link[T] {
	if ls.Empty() {
		return nil
	}
	return ls.root.prev.Remove()
}

// Contains reports whether l is among the first maxProbe links of ls,
// starting at the front. It never visits more than maxProbe links, so a
// false result does not prove l is absent from a longer list.
func (ls *List[T]) Contains(l *Link[T], maxProbe int) bool {
	if ls.Empty() {
		return false
	}
	for cur := ls.root.next; maxProbe > 0 && cur != &ls.root; cur = cur.next {
		if cur == l {
			return true
		}
		maxProbe--
	}
	return false
}

// Len walks ls and counts its members. It is O(n).
func (ls *List[T]) Len() int {
	n := 0
	for range ls.All() {
		n++
	}
	return n
}

// All yields every link from front to back. The next link is captured
// before each yield, so the yielded link may be removed (and its owner
// released) by the loop body.
func (ls *List[T]) All() iter.Seq[*Link[T]] {
	return func(yield func(*Link[T]) bool) {
		if ls.Empty() {
			return
		}
		root := &ls.root
		for cur := root.next; cur != root; {
			next := cur.next
			if !yield(cur) {
				return
			}
			cur = next
		}
	}
}

// Owners yields the owner of every link, front to back, with the same
// removal guarantee as All.
func (ls *List[T]) Owners() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for l := range ls.All() {
			if !yield(l.owner) {
				return
			}
		}
	}
}
