/*
Package console prints polytree trees to a terminal.

Trees are printed sideways, with the root at the left margin and the largest key
on top. Every entry gets a line of its own, indented by the depth of its node:

	    25: Twenty-five
	  20: Twenty
	      18: Eighteen
	        16: Sixteen
	    15: Fifteen
	10: Ten
	  5: Five

Turning the output clockwise by 90° shows the usual picture of a search tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polytree'
func tracer() tracing.Trace {
	return tracing.Select("polytree")
}
