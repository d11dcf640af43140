package tac

// Reserved intrinsic labels occupy 0-4; 5-19 are held in reserve for
// future intrinsics so that user-defined labels always start at a round
// number. Nothing in this package ever assigns a synthetic label below
// FirstUserLabel.
const (
	PrintPtr uint32 = 0
	InputPtr uint32 = 1
	PrintVal uint32 = 2
	InputVal uint32 = 3
	Exit     uint32 = 4

	FirstUserLabel uint32 = 20
)
