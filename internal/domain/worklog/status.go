package worklog

// Status level ordinals used by the heatmap and chart builders. The
// precedence when classifying is leave > sick > casual > work > none.
const (
	LevelNone   = 0
	LevelLeave  = 1
	LevelSick   = 2
	LevelWork   = 3
	LevelCasual = 4
)

// MaxLevel is the highest ordinal a classified day can take.
const MaxLevel = LevelCasual

// Status is the derived display classification of a day.
type Status struct {
	Level int    `json:"level"`
	Label string `json:"label"`
}

// Classify maps a work update (or its absence, pass nil) to a status level
// and label. It is a pure function of the record's leave type: description
// content is never inspected, a record without a leave type classifies as
// work regardless of its text.
func Classify(u *WorkUpdate) Status {
	if u == nil {
		return Status{Level: LevelNone, Label: "NONE"}
	}
	switch u.LeaveType {
	case LeaveRegular:
		return Status{Level: LevelLeave, Label: "LEAVE"}
	case LeaveSick:
		return Status{Level: LevelSick, Label: "SICK_LEAVE"}
	case LeaveCasual:
		return Status{Level: LevelCasual, Label: "CASUAL_LEAVE"}
	default:
		return Status{Level: LevelWork, Label: "WORK"}
	}
}
