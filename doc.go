/*
Package bintree implements a binary tree container with parent back-links
and a view-based traversal protocol.

Trees

Each node of a tree owns up to two children, addressed as a left and a right
slot, and carries a non-owning back-link to its parent. A node with a nil
back-link is by definition the root of its tree; a Tree owns exactly one
root and is never empty.

The tree imposes no ordering on children. It is not a search tree and does
no balancing: the left/right slots carry purely structural meaning, and the
only structural mutation is replacing the content of a slot.

Views

Clients do not traverse a tree by chasing node pointers. Instead they mint a
view — a movable position handle — from the tree and step it through the
node graph:

	tree := bintree.New("root")
	v, _ := tree.View()
	v, err := v.Descend(bintree.Left)   // fails with ErrNoChild on an empty slot
	v, err = v.Climb()                  // fails with ErrAtRoot at the root
	defer v.Release()

Every traversal step consumes the current view and returns a new one; on a
boundary (climbing past the root, descending into an empty slot) the view
comes back unchanged together with a distinguished error, so there is no
silent partial movement.

Views come in a shared, read-only flavor and an exclusive, read-write
flavor. Many shared views may observe a tree at the same time, but an
exclusive view tolerates no other view alongside it. Package bintree tracks
this discipline in a borrow account per tree: minting and releasing views
moves the account, and conflicting requests fail with ErrTreeBorrowed.

A shared view can be upgraded in place with IntoMut. The upgrade walks the
parent chain up to a root and verifies that this root is identical to the
root of the tree presented by the caller, which proves in O(depth) that the
position genuinely lies inside that tree. On success the exclusive view sits
at the original position; on a mismatch the shared view is handed back
unchanged with ErrWrongTree.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer is the trace entry point for generic functions, where a type
// parameter named T would shadow the function T.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrAtRoot signals a climb attempted at the root position. This is an
// expected boundary outcome, not a fault; the view is returned unchanged.
const ErrAtRoot = TreeError("cannot climb: view is at the root")

// ErrNoChild signals a descent into an empty child slot. This is an
// expected boundary outcome, not a fault; the view is returned unchanged.
const ErrNoChild = TreeError("cannot descend: no child in this direction")

// ErrWrongTree signals an upgrade of a view against a tree the view's
// position does not belong to. The shared view stays usable.
const ErrWrongTree = TreeError("view does not belong to the given tree")

// ErrTreeBorrowed signals a request for tree access that conflicts with
// outstanding views: exclusive access while any view is live, or shared
// access while an exclusive view is live.
const ErrTreeBorrowed = TreeError("conflicting views of this tree are still live")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
