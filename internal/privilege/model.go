package privilege

import (
	"fmt"

	"github.com/odyssey-erp/registrar/internal/catalog"
)

var basicKinds = []catalog.Kind{
	catalog.KindHelp,
	catalog.KindExit,
	catalog.KindHistory,
	catalog.KindViewPrivilege,
	catalog.KindLogin,
	catalog.KindLogout,
	catalog.KindRaise,
	catalog.KindList,
	catalog.KindFind,
	catalog.KindView,
	catalog.KindListExams,
	catalog.KindListAssessments,
	catalog.KindListStatistics,
	catalog.KindListFees,
	catalog.KindListMenu,
	catalog.KindListOrders,
	catalog.KindListMembers,
	catalog.KindListEmployees,
}

var tutorKinds = []catalog.Kind{
	catalog.KindAdd,
	catalog.KindEdit,
	catalog.KindAddExam,
	catalog.KindDeleteExam,
	catalog.KindRegisterExam,
	catalog.KindDeregisterExam,
	catalog.KindAddAssessment,
	catalog.KindDeleteAssessment,
	catalog.KindAddGrade,
	catalog.KindAddStatistics,
	catalog.KindEditFees,
	catalog.KindPaidFees,
	catalog.KindAttendance,
	catalog.KindAddOrder,
	catalog.KindCompleteOrder,
	catalog.KindDeleteOrder,
	catalog.KindAddMember,
	catalog.KindRedeem,
}

var adminKinds = []catalog.Kind{
	catalog.KindDelete,
	catalog.KindClear,
	catalog.KindSetPermAdmin,
	catalog.KindSetMasterPassword,
	catalog.KindAddAccount,
	catalog.KindDeleteAccount,
	catalog.KindAddMenu,
	catalog.KindDeleteMenu,
	catalog.KindDeleteMember,
	catalog.KindAddEmployee,
	catalog.KindDeleteEmployee,
}

// Model is the ordered set of roles, lowest first.
type Model struct {
	roles []*Role
}

// NewModel orders roles by ascending level.
func NewModel(roles ...*Role) (*Model, error) {
	for i := 1; i < len(roles); i++ {
		if roles[i].level <= roles[i-1].level {
			return nil, fmt.Errorf("privilege: roles must ascend, %s follows %s", roles[i].level, roles[i-1].level)
		}
	}
	return &Model{roles: roles}, nil
}

// DefaultModel builds Basic, Tutor and Admin. Admin admits every kind.
func DefaultModel() *Model {
	basic := MustRole(LevelBasic, nil, false, basicKinds...)
	tutor := MustRole(LevelTutor, basic, false, tutorKinds...)
	admin := MustRole(LevelAdmin, tutor, true, adminKinds...)
	m, err := NewModel(basic, tutor, admin)
	if err != nil {
		panic(err)
	}
	return m
}

// Role returns the role for level, or nil.
func (m *Model) Role(level Level) *Role {
	for _, r := range m.roles {
		if r.level == level {
			return r
		}
	}
	return nil
}

// IsAllowed reports whether a session at level may run kind.
func (m *Model) IsAllowed(level Level, kind catalog.Kind) bool {
	r := m.Role(level)
	return r != nil && r.Allows(kind)
}

// RequiredRoleFor returns the lowest level whose allow list names kind.
// Kinds admitted only through allowAll map to the highest allowAll role.
func (m *Model) RequiredRoleFor(kind catalog.Kind) Level {
	for _, r := range m.roles {
		if r.lists(kind) {
			return r.level
		}
	}
	for i := len(m.roles) - 1; i >= 0; i-- {
		if m.roles[i].allowAll {
			return m.roles[i].level
		}
	}
	return LevelNone
}

// AllowList returns the kinds a session at level may run.
func (m *Model) AllowList(level Level) []catalog.Kind {
	r := m.Role(level)
	if r == nil {
		return nil
	}
	return r.AllowList()
}
