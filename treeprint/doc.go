/*
Package treeprint renders bintree trees for humans.

It is a debugging aid, not a serialization format: one node per line,
indented by depth, with colored markers for the left and right slots.
Output respects the width of an interactive terminal.

treeprint is an external consumer of the bintree API; it reads trees
exclusively through Tree.Root and the node accessors.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package treeprint

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
