package machining

// Operation identifies the machining operation performed by a pass. Its
// string value is exactly what gets written to the worksheet.
type Operation string

const (
	OpTurnThread Operation = "turn/thread"
	OpBoreDrill  Operation = "bore/drill/tap/ream"
	OpFaceThread Operation = "face/thread"
	OpMilling    Operation = "milling"
	OpCutoff     Operation = "cutoff"
	OpOther      Operation = "other"
)

// Operations returns the selectable operations in menu order.
func Operations() []Operation {
	return []Operation{OpTurnThread, OpBoreDrill, OpFaceThread, OpMilling, OpCutoff, OpOther}
}

// String returns the operation's worksheet label.
func (op Operation) String() string { return string(op) }

// travelCorrected reports whether the extra tool travel allowance applies to
// this operation. Milling and "other" carry no allowance.
func (op Operation) travelCorrected() bool {
	switch op {
	case OpTurnThread, OpFaceThread, OpBoreDrill, OpCutoff:
		return true
	}
	return false
}
