package command

// Registered returns the zero value of every command type, one per kind.
func Registered() []Command {
	return []Command{
		Incorrect{}, Help{}, Exit{}, History{},
		ViewPrivilege{}, Login{}, Logout{}, Raise{}, SetPermAdmin{}, SetMasterPassword{},
		List{}, Find{}, View{}, Add{}, Edit{}, Delete{}, Clear{},
		ListExams{}, AddExam{}, DeleteExam{}, RegisterExam{}, DeregisterExam{},
		ListAssessments{}, AddAssessment{}, DeleteAssessment{}, AddGrade{},
		ListStatistics{}, AddStatistics{},
		ListFees{}, EditFees{}, PaidFees{}, Attendance{},
		AddAccount{}, DeleteAccount{},
		ListMenu{}, AddMenu{}, DeleteMenu{},
		ListOrders{}, AddOrder{}, CompleteOrder{}, DeleteOrder{},
		ListMembers{}, AddMember{}, DeleteMember{}, Redeem{},
		ListEmployees{}, AddEmployee{}, DeleteEmployee{},
	}
}

