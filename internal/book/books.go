package book

// Books aggregates every store the application keeps.
type Books struct {
	Persons     *Store[Person]
	Exams       *Store[Exam]
	Assessments *Store[Assessment]
	Statistics  *Store[Statistic]
	Menu        *Store[MenuItem]
	Orders      *Store[Order]
	Members     *Store[Member]
	Employees   *Store[Employee]
}

// NewBooks returns a set of empty stores.
func NewBooks() *Books {
	return &Books{
		Persons:     NewStore[Person](KindPerson),
		Exams:       NewStore[Exam](KindExam),
		Assessments: NewStore[Assessment](KindAssessment),
		Statistics:  NewStore[Statistic](KindStatistic),
		Menu:        NewStore[MenuItem](KindMenu),
		Orders:      NewStore[Order](KindOrder),
		Members:     NewStore[Member](KindMember),
		Employees:   NewStore[Employee](KindEmployee),
	}
}

// Sized is the untyped view of a store used for bookkeeping.
type Sized interface {
	Kind() Kind
	Len() int
	Records() []Record
}

// Store returns the untyped view of the store for kind, or nil.
func (b *Books) Store(kind Kind) Sized {
	switch kind {
	case KindPerson:
		return b.Persons
	case KindExam:
		return b.Exams
	case KindAssessment:
		return b.Assessments
	case KindStatistic:
		return b.Statistics
	case KindMenu:
		return b.Menu
	case KindOrder:
		return b.Orders
	case KindMember:
		return b.Members
	case KindEmployee:
		return b.Employees
	default:
		return nil
	}
}

// FindAccount returns the person holding the account username.
func (b *Books) FindAccount(username string) (*Person, error) {
	for _, p := range b.Persons.items {
		if p.Account != nil && Fold(p.Account.Username) == Fold(username) {
			return p, nil
		}
	}
	return nil, &NotFoundError{Kind: KindPerson, Key: username}
}

// DetachPerson removes every reference other stores hold to the person:
// exam taker counts drop and recorded grades are discarded.
func (b *Books) DetachPerson(p Person) {
	for _, examKey := range p.Exams {
		if exam, err := b.Exams.Find(examKey); err == nil && exam.Takers > 0 {
			exam.Takers--
		}
	}
	key := p.Key()
	for _, a := range b.Assessments.List() {
		if _, ok := a.Grades[key]; ok {
			_ = b.Assessments.Replace(a.Key(), a.WithoutGrade(key))
		}
	}
}

// RekeyPerson moves grades recorded under oldKey to the person's current key.
func (b *Books) RekeyPerson(oldKey string, p Person) {
	newKey := p.Key()
	if oldKey == newKey {
		return
	}
	for _, a := range b.Assessments.List() {
		grade, ok := a.Grades[oldKey]
		if !ok {
			continue
		}
		_ = b.Assessments.Replace(a.Key(), a.WithoutGrade(oldKey).WithGrade(newKey, grade))
	}
}
