/*
File    : lox/ast/stringify_test.go
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{1.0, "1"},
		{3.14, "3.14"},
		{-0.5, "-0.5"},
		{"hello", "hello"},
		{"", ""},
		{1000000.0, "1000000"},
		{0.00001, "0.00001"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Stringify(c.value))
	}
}
