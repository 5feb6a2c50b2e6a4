package status

// validTransitions lists allowed target statuses for every status.
// Approved and Rejected are final.
var validTransitions = map[Status]map[Status]bool{
	Processing: {Pending: true, Approved: true, Rejected: true},
	Pending:    {Approved: true, Rejected: true},
	Approved:   {},
	Rejected:   {},
}

// CanTransit checks if a record may move from one status to another.
// Writing the same status is always allowed.
func CanTransit(from, to Status) bool {
	if from == to {
		return true
	}
	return validTransitions[from][to]
}

// IsFinal returns true when no further transition is possible
func (st Status) IsFinal() bool {
	tr, ok := validTransitions[st]
	return ok && len(tr) == 0
}
