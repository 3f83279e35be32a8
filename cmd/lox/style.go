/*
File    : lox/cmd/lox/style.go
*/
package main

import "github.com/fatih/color"

// errColor styles diagnostics red when stderr is a real terminal; color
// auto-detects non-tty streams (pipes, redirected files) via go-isatty
// and disables escapes there, so piped output stays byte-exact for
// anything comparing against §6's diagnostic formats.
var errColor = color.New(color.FgRed)
