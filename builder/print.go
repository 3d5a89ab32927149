package builder

import (
	"fmt"
	"strings"
)

// Print renders the scope tree as an indented text dump (spec.md §4.11's
// profiling "print(out)"), e.g.:
//
//	root  constraints=0 variables=0
//	  range_check  constraints=4 variables=4
func Print(root *Scope) string {
	var b strings.Builder
	var walk func(s *Scope, depth int)
	walk = func(s *Scope, depth int) {
		fmt.Fprintf(&b, "%s%s  constraints=%d variables=%d\n",
			strings.Repeat("  ", depth), s.Name, s.Constraints, s.Variables)
		for _, c := range s.Children {
			walk(c, depth+1)
		}
	}
	walk(root, 0)
	return b.String()
}
