package arbor

import "slices"

// Object is the fundamental node of the ownership tree. An object owns its
// children exclusively: a node is a child of at most one parent at any time,
// and attach/detach operations transfer that ownership atomically.
//
// Objects are created with [NewObject] or a parent's [Object.CreateChild];
// both take the [Engine] every node carries a non-owning reference to.
type Object struct {
	// Name identifies the object for [Object.FindChild] lookups. Names are
	// not required to be unique and are not validated.
	Name string

	engine   *Engine
	parent   *Object
	children []*Object

	onAdded        Signal[*Object]
	onRemoved      Signal[*Object]
	onChildAdded   Signal[*Object]
	onChildRemoved Signal[*Object]

	// childRemoved is the internal structural hook used by Widget to prune
	// its typed child cache. It is separate from the public onChildRemoved
	// signal so the single user-facing slot stays free.
	childRemoved func(child *Object)
}

// NewObject creates a detached object referencing the given engine.
func NewObject(engine *Engine) *Object {
	return &Object{engine: engine}
}

// Engine returns the engine this object was created with.
func (o *Object) Engine() *Engine {
	return o.engine
}

// Parent returns the object's parent, or nil if the object is detached.
func (o *Object) Parent() *Object {
	return o.parent
}

// Children returns the object's children in insertion order. The returned
// slice is a read-only view and is only valid until the next structural
// mutation; callers that remove children while iterating must iterate a
// snapshot or repeatedly take Children()[0] from the shrinking list.
func (o *Object) Children() []*Object {
	return o.children
}

// AddChild transfers ownership of child into this object's child list,
// appending it after the existing children. If child is already attached
// somewhere it is removed from its current parent first. A nil child is a
// no-op.
//
// On success the child's onAdded signal fires with this object, then this
// object's onChildAdded signal fires with the child, both before AddChild
// returns. Panics if the attachment would create a cycle.
func (o *Object) AddChild(child *Object) {
	if child == nil {
		return
	}
	if isAncestor(child, o) {
		panic("arbor: adding child would create a cycle")
	}
	if child.parent != nil {
		child.Remove()
	}
	child.parent = o
	o.children = append(o.children, child)
	child.onAdded.Emit(o)
	o.onChildAdded.Emit(child)
}

// CreateChild creates a new object with the given name, attaches it as the
// last child of this object, and returns it.
func (o *Object) CreateChild(name string) *Object {
	child := NewObject(o.engine)
	child.Name = name
	o.AddChild(child)
	return child
}

// FindChild returns the first direct child whose Name equals name, or nil if
// there is none. The search is not recursive.
func (o *Object) FindChild(name string) *Object {
	for _, child := range o.children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Remove detaches this object from its parent and returns it, transferring
// ownership back to the caller. If the object has no parent, Remove returns
// nil and mutates nothing.
//
// The parent's onChildRemoved signal fires while the object is still
// attached; the detachment and the clearing of the parent back-reference
// then happen together, after which the object's own onRemoved signal fires
// with the former parent.
func (o *Object) Remove() *Object {
	parent := o.parent
	if parent == nil {
		return nil
	}
	i := slices.Index(parent.children, o)
	if i < 0 {
		return nil
	}
	parent.onChildRemoved.Emit(o)
	if parent.childRemoved != nil {
		parent.childRemoved(o)
	}
	parent.children = slices.Delete(parent.children, i, i+1)
	o.parent = nil
	o.onRemoved.Emit(parent)
	return o
}

// OnAdded registers the observer called when this object is attached to a
// parent, which is passed to the callback. Re-registering replaces the
// previous observer.
func (o *Object) OnAdded(fn func(parent *Object)) {
	o.onAdded.Connect(fn)
}

// OnRemoved registers the observer called after this object is detached,
// receiving the former parent. Re-registering replaces the previous
// observer.
func (o *Object) OnRemoved(fn func(formerParent *Object)) {
	o.onRemoved.Connect(fn)
}

// OnChildAdded registers the observer called when a child is attached to
// this object. Re-registering replaces the previous observer.
func (o *Object) OnChildAdded(fn func(child *Object)) {
	o.onChildAdded.Connect(fn)
}

// OnChildRemoved registers the observer called when a child is detached from
// this object. The callback fires while the child is still in Children().
// Re-registering replaces the previous observer.
func (o *Object) OnChildRemoved(fn func(child *Object)) {
	o.onChildRemoved.Connect(fn)
}

// isAncestor reports whether candidate is n or an ancestor of n.
func isAncestor(candidate, n *Object) bool {
	for p := n; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}
