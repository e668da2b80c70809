package domain

// Direction is the traversal order of new material across the mushaf.
type Direction string

const (
	DirectionForward  Direction = "forward"
	DirectionBackward Direction = "backward"
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) IsBackward() bool {
	return d == DirectionBackward
}

func (d Direction) Valid() bool {
	return d == DirectionForward || d == DirectionBackward
}

// PaceMode is the daily consumption rate policy for new material.
type PaceMode string

const (
	PaceHalf  PaceMode = "half"
	PaceFull  PaceMode = "full"
	PaceMixed PaceMode = "mixed"
)

func (p PaceMode) String() string {
	return string(p)
}

// Rate returns the maximum pages consumed on a single day under this pace.
func (p PaceMode) Rate() float64 {
	if p == PaceHalf {
		return 0.5
	}
	return 1.0
}

func (p PaceMode) Valid() bool {
	return p == PaceHalf || p == PaceFull || p == PaceMixed
}

// RevisionMode selects how murajjah units are assigned to weekday slots.
type RevisionMode string

const (
	RevisionNone   RevisionMode = "none"
	RevisionManual RevisionMode = "manual"
	RevisionAuto   RevisionMode = "auto"
)

func (m RevisionMode) String() string {
	return string(m)
}

func (m RevisionMode) Valid() bool {
	return m == RevisionNone || m == RevisionManual || m == RevisionAuto
}
