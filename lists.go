package planarity

// listPool is the intrusive linked-collection helper of §4's design notes: a
// single pool of next/prev cells keyed by integer id (a DFS-child id, which
// coincides with a vertex DFI, so one cell per real vertex suffices).
// Several independent lists (sortedDFSChildList, separatedDFSChildList,
// pertinentBicompList) share the *shape* of this helper but never share a
// pool instance, since a given id can sit in more than one of those lists at
// once (§9 Open Question (b)). Append and delete-given-the-id are O(1).
type listPool struct {
	next []int
	prev []int
}

func newListPool(n int) *listPool {
	p := &listPool{next: make([]int, n), prev: make([]int, n)}
	p.reset()
	return p
}

func (p *listPool) reset() {
	for i := range p.next {
		p.next[i] = NIL
		p.prev[i] = NIL
	}
}

// append adds id at the tail of the list whose head is *head.
func (p *listPool) append(head *int, id int) {
	if *head == NIL {
		*head = id
		p.next[id] = id
		p.prev[id] = id
		return
	}
	tail := p.prev[*head]
	p.next[tail] = id
	p.prev[id] = tail
	p.next[id] = *head
	p.prev[*head] = id
}

// prepend adds id at the head of the list whose head is *head, and makes it
// the new head.
func (p *listPool) prepend(head *int, id int) {
	p.append(head, id)
	*head = id
}

// remove deletes id from the list whose head is *head. id must currently be
// a member of that list.
func (p *listPool) remove(head *int, id int) {
	if p.next[id] == id {
		*head = NIL
	} else {
		pr, nx := p.prev[id], p.next[id]
		p.next[pr] = nx
		p.prev[nx] = pr
		if *head == id {
			*head = nx
		}
	}
	p.next[id] = NIL
	p.prev[id] = NIL
}

// popFront removes and returns the head of the list whose head is *head.
func (p *listPool) popFront(head *int) (int, bool) {
	if *head == NIL {
		return NIL, false
	}
	id := *head
	p.remove(head, id)
	return id, true
}

// removeIfMember removes id from the list whose head is *head only if id is
// currently linked into some list from this pool's cells; unlike remove, it
// is safe to call when id may or may not be present. A cell is unlinked iff
// both its next/prev are NIL and it isn't the lone one-element head.
func (p *listPool) removeIfMember(head *int, id int) {
	if *head != id && p.next[id] == NIL && p.prev[id] == NIL {
		return
	}
	p.remove(head, id)
}

// clear empties the list whose head is *head without deallocating cells,
// resetting every member's next/prev cell to NIL.
func (p *listPool) clear(head *int) {
	id := *head
	for id != NIL {
		nx := p.next[id]
		p.next[id] = NIL
		p.prev[id] = NIL
		if nx == *head {
			break
		}
		id = nx
	}
	*head = NIL
}

// iterate calls fn for every id in the list whose head is head, in list
// order, exactly once each (safe even though fn may not mutate the list).
func (p *listPool) iterate(head int, fn func(id int)) {
	if head == NIL {
		return
	}
	id := head
	for {
		fn(id)
		id = p.next[id]
		if id == head {
			return
		}
	}
}

// arcList is the analogous circular-list helper over the Arc array's own
// Next/Prev fields, used both for a vertex's adjacency list (keyed by
// FirstArc/LastArc) and for a vertex's FwdArcList (invariant I3): an arc is
// a member of exactly one such list at a time, so both uses may share the
// same Next/Prev cell.
type arcList struct {
	arcs []Arc
}

func (l arcList) pushBack(head *int, id int) {
	if *head == NIL {
		*head = id
		l.arcs[id].Next = id
		l.arcs[id].Prev = id
		return
	}
	tail := l.arcs[*head].Prev
	l.arcs[tail].Next = id
	l.arcs[id].Prev = tail
	l.arcs[id].Next = *head
	l.arcs[*head].Prev = id
}

func (l arcList) pushFront(head *int, id int) {
	l.pushBack(head, id)
	*head = id
}

func (l arcList) remove(head *int, id int) {
	if l.arcs[id].Next == id {
		*head = NIL
	} else {
		pr, nx := l.arcs[id].Prev, l.arcs[id].Next
		l.arcs[pr].Next = nx
		l.arcs[nx].Prev = pr
		if *head == id {
			*head = nx
		}
	}
	l.arcs[id].Next = NIL
	l.arcs[id].Prev = NIL
}

func (l arcList) iterateOnce(head int, fn func(id int)) {
	if head == NIL {
		return
	}
	id := head
	for {
		nx := l.arcs[id].Next
		fn(id)
		if nx == head {
			return
		}
		id = nx
	}
}
