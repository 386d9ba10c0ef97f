// Package tc is the boundary to the traffic-control tool. It reifies tc
// invocations as command values, runs them through an injectable Executor,
// and parses the tool's textual statistics output. No other package sees a
// raw command line or raw tc output.
package tc

import (
	"fmt"
	"strings"
)

// Command is a single tc invocation, reified as argument values rather than
// a formatted string so tests can assert on exactly what was issued.
type Command struct {
	Args []string
}

func (c Command) String() string {
	return "tc " + strings.Join(c.Args, " ")
}

// classID renders a class identifier such as "23:4".
func classID(handle, minor uint32) string {
	return fmt.Sprintf("%d:%d", handle, minor)
}

// qdiscID renders a qdisc identifier such as "23:".
func qdiscID(handle uint32) string {
	return fmt.Sprintf("%d:", handle)
}
