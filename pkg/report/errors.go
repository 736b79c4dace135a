package report

import "errors"

// ErrNotWritable indicates the output path could not be written.
var ErrNotWritable = errors.New("output path is not writable")
