// Package reactive provides a minimal reactive reference primitive: a
// settable [Signal] and a lazily re-derived [Computed] value, plus an
// [Adapter] that detects and unwraps references held in untyped containers.
//
// Hosts that bring their own reactivity implement [Adapter] over it; hosts
// without any use [Identity].
package reactive
