package parser

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/odyssey-erp/registrar/internal/book"
	"github.com/odyssey-erp/registrar/internal/command"
)

func parseHelp(args string) (command.Command, error) {
	fields := strings.Fields(args)
	switch len(fields) {
	case 0:
		return command.Help{}, nil
	case 1:
		return command.Help{Word: strings.ToLower(fields[0])}, nil
	default:
		return nil, errFormat
	}
}

// parseHistory accepts an optional command word and an optional page, in
// either order.
func parseHistory(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) > 2 {
		return nil, errFormat
	}
	var c command.History
	for _, f := range fields {
		if f[0] >= '0' && f[0] <= '9' {
			if c.Page != 0 {
				return nil, errFormat
			}
			page, err := parseIndex(f)
			if err != nil {
				return nil, err
			}
			c.Page = page
			continue
		}
		if c.Word != "" {
			return nil, errFormat
		}
		c.Word = strings.ToLower(f)
	}
	return c, nil
}

func parseLogin(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return nil, errFormat
	}
	return command.Login{Username: fields[0], Password: fields[1]}, nil
}

func parseRaise(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, errFormat
	}
	return command.Raise{Password: fields[0]}, nil
}

func parseSetPermAdmin(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, errFormat
	}
	enabled, err := cast.ToBoolE(strings.ToLower(fields[0]))
	if err != nil {
		return nil, invalidf("%q is not true or false.", fields[0])
	}
	return command.SetPermAdmin{Enabled: enabled}, nil
}

func parseSetMasterPassword(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) != 1 {
		return nil, errFormat
	}
	return command.SetMasterPassword{Password: fields[0]}, nil
}

func parseFind(args string) (command.Command, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return nil, errFormat
	}
	return command.Find{Keywords: fields}, nil
}

func parseAdd(args string) (command.Command, error) {
	m := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixAddress, prefixTag)
	if m.preamble != "" || !m.has(prefixName, prefixPhone, prefixEmail, prefixAddress) {
		return nil, errFormat
	}
	name, _ := m.value(prefixName)
	phone, _ := m.value(prefixPhone)
	email, _ := m.value(prefixEmail)
	address, _ := m.value(prefixAddress)
	return command.Add{Person: book.Person{
		Name:    name,
		Phone:   phone,
		Email:   email,
		Address: address,
		Tags:    tags(m.all(prefixTag)),
	}}, nil
}

func parseEdit(args string) (command.Command, error) {
	m := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixAddress, prefixTag)
	index, err := singleIndex(m.preamble)
	if err != nil {
		return nil, err
	}
	var changes command.PersonChanges
	if v, ok := m.value(prefixName); ok {
		changes.Name = &v
	}
	if v, ok := m.value(prefixPhone); ok {
		changes.Phone = &v
	}
	if v, ok := m.value(prefixEmail); ok {
		changes.Email = &v
	}
	if v, ok := m.value(prefixAddress); ok {
		changes.Address = &v
	}
	if raw := m.all(prefixTag); len(raw) > 0 {
		t := tags(raw)
		changes.Tags = &t
	}
	if changes.Empty() {
		return nil, invalidf("At least one field to edit must be provided.")
	}
	return command.Edit{Index: index, Changes: changes}, nil
}

func parseAddExam(args string) (command.Command, error) {
	m := tokenize(args, prefixSubject, prefixExamName, prefixDate, prefixStart, prefixEnd, prefixDetails)
	if m.preamble != "" || !m.has(prefixSubject, prefixExamName, prefixDate, prefixStart, prefixEnd) {
		return nil, errFormat
	}
	subject, _ := m.value(prefixSubject)
	name, _ := m.value(prefixExamName)
	date, _ := m.value(prefixDate)
	start, _ := m.value(prefixStart)
	end, _ := m.value(prefixEnd)
	details, _ := m.value(prefixDetails)
	if _, err := book.ParseDate(date); err != nil {
		return nil, invalidf("Date must be in YYYY-MM-DD form.")
	}
	if _, err := book.ParseClock(start); err != nil {
		return nil, invalidf("Start time must be in HH:MM form.")
	}
	if _, err := book.ParseClock(end); err != nil {
		return nil, invalidf("End time must be in HH:MM form.")
	}
	return command.AddExam{Exam: book.Exam{
		Subject: subject,
		Name:    name,
		Date:    date,
		Start:   start,
		End:     end,
		Details: details,
	}}, nil
}

func parseAddAssessment(args string) (command.Command, error) {
	m := tokenize(args, prefixSubject, prefixAssessment)
	if m.preamble != "" || !m.has(prefixSubject, prefixAssessment) {
		return nil, errFormat
	}
	subject, _ := m.value(prefixSubject)
	name, _ := m.value(prefixAssessment)
	return command.AddAssessment{Assessment: book.Assessment{Subject: subject, Name: name}}, nil
}

func parseAddGrade(args string) (command.Command, error) {
	m := tokenize(args, prefixGrade)
	fields := strings.Fields(m.preamble)
	if len(fields) != 2 || !m.has(prefixGrade) {
		return nil, errFormat
	}
	personIndex, err := parseIndex(fields[0])
	if err != nil {
		return nil, err
	}
	assessmentIndex, err := parseIndex(fields[1])
	if err != nil {
		return nil, err
	}
	raw, _ := m.value(prefixGrade)
	grade, err := cast.ToFloat64E(raw)
	if err != nil || math.IsNaN(grade) || math.IsInf(grade, 0) {
		return nil, invalidf("Grade %q is not a number.", raw)
	}
	return command.AddGrade{PersonIndex: personIndex, AssessmentIndex: assessmentIndex, Grade: grade}, nil
}

func parseEditFees(args string) (command.Command, error) {
	m := tokenize(args, prefixFee, prefixDate)
	index, err := singleIndex(m.preamble)
	if err != nil {
		return nil, err
	}
	if !m.has(prefixFee, prefixDate) {
		return nil, errFormat
	}
	rawAmount, _ := m.value(prefixFee)
	amount, err := book.ParseMoney(rawAmount)
	if err != nil {
		return nil, invalidf("Amount %q is not a valid sum of money.", rawAmount)
	}
	due, _ := m.value(prefixDate)
	if _, err := book.ParseDate(due); err != nil {
		return nil, invalidf("Due date must be in YYYY-MM-DD form.")
	}
	return command.EditFees{Index: index, AmountCents: amount, Due: due}, nil
}

func parseAttendance(args string) (command.Command, error) {
	m := tokenize(args, prefixDate)
	pre := strings.Fields(m.preamble)
	if len(pre) == 0 || !m.has(prefixDate) {
		return nil, errFormat
	}
	index, err := parseIndex(pre[0])
	if err != nil {
		return nil, err
	}
	raw, _ := m.value(prefixDate)
	dateFields := strings.Fields(raw)
	if len(dateFields) == 0 {
		return nil, errFormat
	}
	present := true
	for _, extra := range append(pre[1:], dateFields[1:]...) {
		if !strings.EqualFold(extra, "absent") {
			return nil, errFormat
		}
		present = false
	}
	if _, err := book.ParseDate(dateFields[0]); err != nil {
		return nil, invalidf("Date must be in YYYY-MM-DD form.")
	}
	return command.Attendance{Index: index, Date: dateFields[0], Present: present}, nil
}

func parseAddAccount(args string) (command.Command, error) {
	m := tokenize(args, prefixUsername, prefixPassword, prefixRole)
	index, err := singleIndex(m.preamble)
	if err != nil {
		return nil, err
	}
	if !m.has(prefixUsername, prefixPassword, prefixRole) {
		return nil, errFormat
	}
	username, _ := m.value(prefixUsername)
	password, _ := m.value(prefixPassword)
	role, _ := m.value(prefixRole)
	return command.AddAccount{Index: index, Username: username, Password: password, Role: role}, nil
}

func parseAddMenu(args string) (command.Command, error) {
	m := tokenize(args, prefixName, prefixPhone, prefixTag)
	if m.preamble != "" || !m.has(prefixName, prefixPhone) {
		return nil, errFormat
	}
	name, _ := m.value(prefixName)
	rawPrice, _ := m.value(prefixPhone)
	price, err := book.ParseMoney(rawPrice)
	if err != nil {
		return nil, invalidf("Price %q is not a valid sum of money.", rawPrice)
	}
	return command.AddMenu{Item: book.MenuItem{Name: name, PriceCents: price, Tags: tags(m.all(prefixTag))}}, nil
}

func parseAddOrder(args string) (command.Command, error) {
	m := tokenize(args, prefixName, prefixPhone, prefixDish)
	if m.preamble != "" || !m.has(prefixName, prefixPhone, prefixDish) {
		return nil, errFormat
	}
	customer, _ := m.value(prefixName)
	phone, _ := m.value(prefixPhone)
	var dishes []string
	for _, d := range m.all(prefixDish) {
		if d = strings.TrimSpace(d); d != "" {
			dishes = append(dishes, d)
		}
	}
	if len(dishes) == 0 {
		return nil, errFormat
	}
	return command.AddOrder{Customer: customer, Phone: phone, Dishes: dishes}, nil
}

func parseAddMember(args string) (command.Command, error) {
	m := tokenize(args, prefixName, prefixPhone, prefixEmail)
	if m.preamble != "" || !m.has(prefixName, prefixPhone, prefixEmail) {
		return nil, errFormat
	}
	name, _ := m.value(prefixName)
	phone, _ := m.value(prefixPhone)
	email, _ := m.value(prefixEmail)
	return command.AddMember{Member: book.Member{Name: name, Phone: phone, Email: email}}, nil
}

func parseAddEmployee(args string) (command.Command, error) {
	m := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixPosition)
	if m.preamble != "" || !m.has(prefixName, prefixPhone, prefixEmail, prefixPosition) {
		return nil, errFormat
	}
	name, _ := m.value(prefixName)
	phone, _ := m.value(prefixPhone)
	email, _ := m.value(prefixEmail)
	position, _ := m.value(prefixPosition)
	return command.AddEmployee{Employee: book.Employee{Name: name, Phone: phone, Email: email, Position: position}}, nil
}

func singleIndex(preamble string) (int, error) {
	fields := strings.Fields(preamble)
	if len(fields) != 1 {
		return 0, errFormat
	}
	return parseIndex(fields[0])
}

// tags drops empty values so a bare t/ clears the tag list.
func tags(raw []string) []string {
	var out []string
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}
