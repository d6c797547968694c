package book

import (
	"fmt"
	"slices"
	"strings"
)

// Person is a student or contact tracked by the address book.
type Person struct {
	Name       string       `json:"name" validate:"required,max=100"`
	Phone      string       `json:"phone" validate:"required,numeric,min=3,max=20"`
	Email      string       `json:"email" validate:"required,email,max=254"`
	Address    string       `json:"address" validate:"required,max=200"`
	Tags       []string     `json:"tags,omitempty" validate:"dive,alphanum,max=30"`
	Exams      []string     `json:"exams,omitempty"`
	Fees       *Fees        `json:"fees,omitempty"`
	Attendance []Attendance `json:"attendance,omitempty" validate:"dive"`
	Account    *Account     `json:"account,omitempty"`
}

// Fees records an outstanding or settled tuition fee.
type Fees struct {
	AmountCents int64  `json:"amount_cents" validate:"gte=0"`
	Due         string `json:"due" validate:"required,isodate"`
	Paid        bool   `json:"paid"`
}

// Attendance marks presence on one date.
type Attendance struct {
	Date    string `json:"date" validate:"required,isodate"`
	Present bool   `json:"present"`
}

// Account holds login credentials attached to a person.
type Account struct {
	Username     string `json:"username" validate:"required,alphanum,min=3,max=32"`
	PasswordHash string `json:"password_hash" validate:"required"`
	Role         string `json:"role" validate:"required,oneof=basic tutor admin"`
}

// Key implements Record.
func (p Person) Key() string {
	return joinKey(Fold(p.Name), p.Phone, strings.ToLower(p.Email))
}

// Kind implements Record.
func (Person) Kind() Kind { return KindPerson }

// DisplayName returns the name shown to users.
func (p Person) DisplayName() string { return p.Name }

// RegisteredFor reports whether the person is registered for the exam key.
func (p Person) RegisteredFor(examKey string) bool {
	return slices.Contains(p.Exams, examKey)
}

// OwesFees reports whether an unpaid fee is recorded.
func (p Person) OwesFees() bool {
	return p.Fees != nil && !p.Fees.Paid
}

// WithAttendance returns a copy with the mark for date set, replacing any
// previous mark on that date and keeping marks ordered by date.
func (p Person) WithAttendance(date string, present bool) Person {
	marks := make([]Attendance, 0, len(p.Attendance)+1)
	for _, mark := range p.Attendance {
		if mark.Date != date {
			marks = append(marks, mark)
		}
	}
	marks = append(marks, Attendance{Date: date, Present: present})
	slices.SortFunc(marks, func(a, b Attendance) int { return strings.Compare(a.Date, b.Date) })
	p.Attendance = marks
	return p
}

func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s; Phone: %s; Email: %s; Address: %s", p.Name, p.Phone, p.Email, p.Address)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "; Tags: %s", strings.Join(p.Tags, ", "))
	}
	return b.String()
}

// Details renders the full profile used by the view command.
func (p Person) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\nEmail: %s\nAddress: %s\n", p.Name, p.Phone, p.Email, p.Address)
	if len(p.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(p.Tags, ", "))
	}
	fmt.Fprintf(&b, "Exams registered: %d\n", len(p.Exams))
	if p.Fees != nil {
		status := "unpaid"
		if p.Fees.Paid {
			status = "paid"
		}
		fmt.Fprintf(&b, "Fees: %s due %s (%s)\n", FormatMoney(p.Fees.AmountCents), p.Fees.Due, status)
	}
	if len(p.Attendance) > 0 {
		present := 0
		for _, mark := range p.Attendance {
			if mark.Present {
				present++
			}
		}
		fmt.Fprintf(&b, "Attendance: %d/%d sessions\n", present, len(p.Attendance))
	}
	if p.Account != nil {
		fmt.Fprintf(&b, "Account: %s (%s)\n", p.Account.Username, p.Account.Role)
	}
	return strings.TrimRight(b.String(), "\n")
}
