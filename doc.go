// Package arbor is an engine-agnostic scene-graph core: a hierarchical
// ownership tree of named [Object] nodes, specialized by [Widget] (which adds
// axis-aligned bounds and hit testing), coordinated by an [Engine] that
// dispatches input events and drives per-frame updates independent of the
// rendering backend plugged in underneath.
//
// # Quick start
//
// Create an engine, open a window, and build a widget tree under the
// window's root:
//
//	engine := arbor.NewEngine()
//	window, err := arbor.NewWindow(engine, arbor.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	box := arbor.NewRectangle(engine)
//	box.Position = arbor.Vec2{X: 100, Y: 100}
//	box.Size = arbor.Vec2{X: 200, Y: 150}
//	window.Root().AddWidget(&box.Widget)
//
//	if err := window.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Ownership tree
//
// Every node is an [Object]. An object owns its children exclusively:
// attaching a node to a new parent detaches it from the old one, and
// [Object.Remove] detaches a node and hands it back to the caller. Structural
// changes fire the single-slot observers registered with
// [Object.OnChildAdded] and [Object.OnChildRemoved], synchronously, before
// the mutating call returns.
//
// # Widgets and hit testing
//
// [Widget] extends Object with a position/size bounding box and keeps a
// typed, order-preserving cache of its widget children. [Widget.WidgetAt]
// resolves which widget contains a point, depth-first with
// most-recently-added siblings winning, matching the order widgets draw in.
//
// # Backends
//
// The core consumes rendering only through the [Renderer] contract and
// produces platform input as [Event] values delivered to [Engine.Dispatch].
// The included [Window] is an [Ebitengine]-backed implementation of both
// sides; headless use (tests, simulations) needs neither.
//
// [Ebitengine]: https://ebitengine.org
package arbor
