// Package web holds the embedded browser front end.
package web

import _ "embed"

// Index is the single-page joke teller served at /.
//
//go:embed index.html
var Index []byte
