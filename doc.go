/*
Package polytree implements an unbalanced binary search tree as a polymorphic
value.

Trees

A tree is either empty or non-empty. Instead of representing an empty subtree
by a nil pointer, polytree uses two distinct variants of interface Tree:

	Empty[K,V]      carries no data and is the base case of every operation
	*NonEmpty[K,V]  carries one key, one value and two owned subtrees

Every operation is defined once per variant. Client code never has to check
for nil children: asking an empty tree for its size yields 0, searching it
yields "not found", deleting from it yields the empty tree again.

Modifying operations (Insert, Delete) return a tree, which clients have to
use as the new identity of the tree. The root variant may change, e.g.
inserting into an empty tree yields a non-empty tree and deleting the last
entry yields an empty tree:

	var t polytree.Tree[int, string] = polytree.Empty[int, string]{}
	t = t.Insert(10, "Ten")
	t = t.Insert(5, "Five")
	t = t.Delete(10)

Clients preferring a container with a stable identity may use Map, which holds
the root of a tree and swaps it on every modification.

Keys are ordered by their natural order (cmp.Compare). Trees do no
balancing: the height of a tree depends on the order of insertion and is
between ceil(log2(n+1)) and n. Recursion depth is bounded by the height.

Trees are not safe for concurrent modification.

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
package polytree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// tracer writes to trace with key 'polytree'
func tracer() tracing.Trace {
	return tracing.Select("polytree")
}

// TreeError is an error type for the polytree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrTreeIsEmpty is flagged whenever an operation needs at least one entry,
// e.g. asking a Map for its minimum key.
const ErrTreeIsEmpty = TreeError("tree is empty")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariantViolated is flagged by Check whenever a tree's structure is corrupt.
const ErrInvariantViolated = TreeError("tree invariant violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
