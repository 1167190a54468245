/*
Package textfile provides API helpers to load key/value text files as maps.

A file holds one entry per line, separated by a colon:

	# comment
	option1: value1
	option2: value2

Files are parsed as YAML documents consisting of a single flat mapping, so
quoting and comments follow YAML rules. Entries are inserted in file order,
which determines the shape of the resulting tree.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'polytree'
func tracer() tracing.Trace {
	return tracing.Select("polytree")
}
