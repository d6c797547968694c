package catalog

// Category groups commands by the stores they touch.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryPrivilege
	CategoryPerson
	CategoryExam
	CategoryAssessment
	CategoryStatistics
	CategoryFees
	CategoryAttendance
	CategoryAccount
	CategoryMenu
	CategoryOrder
	CategoryMember
	CategoryEmployee
)

var categoryNames = map[Category]string{
	CategoryGeneral:    "General",
	CategoryPrivilege:  "Privilege",
	CategoryPerson:     "Person",
	CategoryExam:       "Exam",
	CategoryAssessment: "Assessment",
	CategoryStatistics: "Statistics",
	CategoryFees:       "Fees",
	CategoryAttendance: "Attendance",
	CategoryAccount:    "Account",
	CategoryMenu:       "Menu",
	CategoryOrder:      "Order",
	CategoryMember:     "Member",
	CategoryEmployee:   "Employee",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Target names one persisted document.
type Target string

const (
	TargetPersons     Target = "persons"
	TargetExams       Target = "exams"
	TargetAssessments Target = "assessments"
	TargetStatistics  Target = "statistics"
	TargetMenu        Target = "menu"
	TargetOrders      Target = "orders"
	TargetMembers     Target = "members"
	TargetEmployees   Target = "employees"
	TargetPreferences Target = "preferences"
)

// StoreTargets lists the targets backed by a record store.
func StoreTargets() []Target {
	return []Target{
		TargetPersons, TargetExams, TargetAssessments, TargetStatistics,
		TargetMenu, TargetOrders, TargetMembers, TargetEmployees,
	}
}

// Targets returns the primary and secondary documents a category's mutating
// commands change.
func (c Category) Targets() (primary, secondary []Target) {
	switch c {
	case CategoryPerson:
		return []Target{TargetPersons}, []Target{TargetExams, TargetAssessments}
	case CategoryExam:
		return []Target{TargetExams}, []Target{TargetPersons}
	case CategoryAssessment:
		return []Target{TargetAssessments}, []Target{TargetStatistics}
	case CategoryStatistics:
		return []Target{TargetStatistics}, nil
	case CategoryFees, CategoryAttendance, CategoryAccount:
		return []Target{TargetPersons}, nil
	case CategoryPrivilege:
		return []Target{TargetPreferences}, nil
	case CategoryMenu:
		return []Target{TargetMenu}, nil
	case CategoryOrder:
		return []Target{TargetOrders}, []Target{TargetMembers}
	case CategoryMember:
		return []Target{TargetMembers}, nil
	case CategoryEmployee:
		return []Target{TargetEmployees}, nil
	default:
		return nil, nil
	}
}
