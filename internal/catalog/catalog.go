// Package catalog describes every command kind: its keyword, category,
// persistence flags and usage text.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Kind identifies a concrete command.
type Kind int

const (
	KindIncorrect Kind = iota
	KindHelp
	KindExit
	KindHistory
	KindViewPrivilege
	KindLogin
	KindLogout
	KindRaise
	KindSetPermAdmin
	KindSetMasterPassword
	KindList
	KindFind
	KindView
	KindAdd
	KindEdit
	KindDelete
	KindClear
	KindListExams
	KindAddExam
	KindDeleteExam
	KindRegisterExam
	KindDeregisterExam
	KindListAssessments
	KindAddAssessment
	KindDeleteAssessment
	KindAddGrade
	KindListStatistics
	KindAddStatistics
	KindListFees
	KindEditFees
	KindPaidFees
	KindAttendance
	KindAddAccount
	KindDeleteAccount
	KindListMenu
	KindAddMenu
	KindDeleteMenu
	KindListOrders
	KindAddOrder
	KindCompleteOrder
	KindDeleteOrder
	KindListMembers
	KindAddMember
	KindDeleteMember
	KindRedeem
	KindListEmployees
	KindAddEmployee
	KindDeleteEmployee

	kindCount
)

// Descriptor is the static metadata of one command kind.
type Descriptor struct {
	Kind     Kind
	Word     string
	Category Category
	// Mutating marks commands that change the category's primary stores.
	Mutating bool
	// SecondaryMutating marks commands that also change the secondary stores.
	SecondaryMutating bool
	Usage             string
}

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return table[k].Word
}

var (
	table  [kindCount]Descriptor
	byWord map[string]Kind
)

func init() {
	seen := make(map[Kind]bool, len(descriptors))
	byWord = make(map[string]Kind, len(descriptors))
	for _, d := range descriptors {
		if d.Kind < 0 || d.Kind >= kindCount {
			panic(fmt.Sprintf("catalog: descriptor for out-of-range kind %d", int(d.Kind)))
		}
		if seen[d.Kind] {
			panic(fmt.Sprintf("catalog: kind %q described twice", d.Word))
		}
		if _, dup := byWord[d.Word]; dup {
			panic(fmt.Sprintf("catalog: word %q used twice", d.Word))
		}
		seen[d.Kind] = true
		table[d.Kind] = d
		if d.Kind != KindIncorrect {
			byWord[d.Word] = d.Kind
		}
	}
	for k := Kind(0); k < kindCount; k++ {
		if !seen[k] {
			panic(fmt.Sprintf("catalog: kind %d has no descriptor", int(k)))
		}
	}
}

// Describe returns the descriptor for k. It panics on an unknown kind.
func Describe(k Kind) Descriptor {
	if k < 0 || k >= kindCount {
		panic(fmt.Sprintf("catalog: unknown kind %d", int(k)))
	}
	return table[k]
}

// Lookup returns the kind bound to a command word, ignoring case.
func Lookup(word string) (Kind, bool) {
	k, ok := byWord[strings.ToLower(word)]
	return k, ok
}

// All returns every user-invocable descriptor ordered by category then word.
func All() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors))
	for _, d := range table {
		if d.Kind == KindIncorrect {
			continue
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// Kinds returns every kind including the incorrect placeholder.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
