// Package list implements an intrusive, circular, doubly linked list.
//
// A Link is embedded in the record that owns it. The list never allocates
// or frees anything: it only threads links together, and removing a link
// leaves the owning record untouched. A List is a sentinel Link whose next
// and prev point back at itself when empty.
//
// # Usage
//
//	type job struct {
//	    link list.Link[job]
//	    id   int
//	}
//
//	var pending list.List[job]
//
//	j := &job{id: 7}
//	pending.PushBack(j.link.Init(j))
//
//	for j := range pending.Owners() {
//	    j.link.Remove() // safe while iterating
//	}
//
// Go has no container-of projection, so each Link carries a pointer back to
// its owner, set by Init. Links that were never initialised yield a nil owner.
//
// # Misuse
//
// Removing a link twice is harmless: the first Remove leaves it as a
// self-referential one-element ring and the second is a no-op splice.
// Inserting a link that is still a member of some list corrupts both lists;
// callers must Remove before reinserting.
//
// # Thread Safety
//
// Lists are not thread-safe. Callers must synchronize access externally.
package list
