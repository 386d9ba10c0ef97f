// Package handle computes tc handle and minor numbers for the shaping
// hierarchy. Every function is pure and takes the configured priority and
// level counts as arguments, so each component derives identical identifiers
// from (priority, client id, level) without any shared allocation table.
//
// Four address spaces are carved out, in order: the root HTB minors (one
// branch per priority, one helper per priority, one default), the DSCP
// marking qdisc handles, the per-priority rate-limit base qdisc handles, and
// the per-(client, priority, level) chain qdisc handles. Each space starts
// after the previous one ends, so no number is ever reused across spaces.
package handle

// RootQdisc is the handle of the root HTB qdisc.
const RootQdisc uint32 = 1

// RootMinor returns the root HTB minor of the class carrying a priority's
// traffic. Minors start at 1.
func RootMinor(priority uint32) uint32 {
	return priority + 1
}

// RootMinorHelper returns the root HTB minor of the helper class splitting a
// priority's branch from the lower tiers. Helpers start after the branch
// minors.
func RootMinorHelper(numPriorities, priority uint32) uint32 {
	return priority + RootMinor(numPriorities)
}

// RootMinorDefault returns the root HTB minor of the class for unclassified
// traffic. It follows the last helper minor.
func RootMinorDefault(numPriorities uint32) uint32 {
	return RootMinorHelper(numPriorities, numPriorities)
}

// MarkQdisc returns the handle of the DSCP marking qdisc attached to a
// priority's branch. Handles start after the root minors to avoid any
// confusion from reused numbers.
func MarkQdisc(numPriorities, priority uint32) uint32 {
	return priority + RootMinorDefault(numPriorities) + 1
}

// LimitBase returns the handle of the per-priority HTB qdisc anchoring
// client rate-limit chains.
func LimitBase(numPriorities, priority uint32) uint32 {
	return priority + MarkQdisc(numPriorities, numPriorities)
}

// LimitQdisc returns the handle of the qdisc holding a client's chain class
// at the given level.
func LimitQdisc(numPriorities, numLevels, id, priority, level uint32) uint32 {
	offset := id*numPriorities*numLevels + priority*numLevels + level
	return offset + LimitBase(numPriorities, numPriorities)
}

// LimitMinor returns the class minor for a client's chain level. Minor 1 is
// reserved for default traffic in every chain qdisc, so level 0 classes
// start at id+2. Deeper levels hold exactly one named class, always minor 1.
func LimitMinor(id, level uint32) uint32 {
	if level == 0 {
		return id + 2
	}
	return 1
}
