// Package debug replaces the "currently debugged cube" process-wide global
// pointer called out in spec.md §5/§9 with a capability explicitly attached
// to a Hardware instance at construction, so multiple Hardware instances
// can be instantiated in the same process (and the same test binary)
// without interfering with each other.
package debug

// Debugger is implemented by a debugger UI/harness. StopOnException
// reports whether an attached cube's exceptions should transfer control to
// the debugger instead of just being logged; OnException is the transfer
// point itself.
type Debugger interface {
	StopOnException() bool
	OnException(pc uint16, kindName string)
}

// Capability is what a Hardware instance holds: at most one Debugger may
// be attached, and IsAttached distinguishes "no debugger" from "a debugger
// is attached but not currently stopping on exceptions" (spec.md §7's
// isDebugging()/stopOnException split).
type Capability struct {
	debugger Debugger
}

// New returns a Capability with no debugger attached.
func New() *Capability {
	return &Capability{}
}

// Attach wires a Debugger to this capability. Passing nil detaches.
func (c *Capability) Attach(d Debugger) {
	c.debugger = d
}

// IsAttached reports whether a debugger is currently attached.
func (c *Capability) IsAttached() bool {
	return c.debugger != nil
}

// HandleException gives the attached debugger first refusal on an
// exception; it returns true if the debugger took control (spec.md §7: "the
// debugger ... may transfer control; otherwise execution continues").
func (c *Capability) HandleException(pc uint16, kindName string) (handled bool) {
	if c.debugger == nil || !c.debugger.StopOnException() {
		return false
	}
	c.debugger.OnException(pc, kindName)
	return true
}
