/*
Package task provides ready-made traversal tasks for polytree trees.

Tasks are handed to Tree.InorderTraversal or Tree.RightRootLeftTraversal and are
called once per entry, in the order the traversal defines. Tasks must not
modify the tree they are traversing.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package task

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polytree'
func tracer() tracing.Trace {
	return tracing.Select("polytree")
}
