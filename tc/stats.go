package tc

import (
	"strconv"
	"strings"
)

// parseSentBytes extracts the Sent byte counter for class parent:minor from
// "tc -s class show" output. The class header line names the class id in its
// third field; the counter follows on a later line as "Sent <n> bytes ...".
// A class absent from the listing yields zero.
func parseSentBytes(out string, parent, minor uint32) uint64 {
	want := classID(parent, minor)
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 3 || fields[0] != "class" || fields[2] != want {
			continue
		}
		for _, next := range lines[i+1:] {
			nf := strings.Fields(next)
			if len(nf) == 0 {
				continue
			}
			if nf[0] == "class" {
				break
			}
			if nf[0] == "Sent" && len(nf) >= 2 {
				n, err := strconv.ParseUint(nf[1], 10, 64)
				if err != nil {
					return 0
				}
				return n
			}
		}
		return 0
	}
	return 0
}
