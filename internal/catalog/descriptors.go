package catalog

var descriptors = []Descriptor{
	{Kind: KindIncorrect, Word: "incorrect", Category: CategoryGeneral},
	{Kind: KindHelp, Word: "help", Category: CategoryGeneral,
		Usage: "help [COMMAND]: shows the commands available to you, or the usage of one command"},
	{Kind: KindExit, Word: "exit", Category: CategoryGeneral,
		Usage: "exit: leaves the application"},
	{Kind: KindHistory, Word: "history", Category: CategoryGeneral,
		Usage: "history [COMMAND] [PAGE]: lists the most recent commands, optionally only those of one command"},

	{Kind: KindViewPrivilege, Word: "viewprivilege", Category: CategoryPrivilege,
		Usage: "viewprivilege: shows the current privilege level"},
	{Kind: KindLogin, Word: "login", Category: CategoryPrivilege,
		Usage: "login USERNAME PASSWORD: logs in to an account\nExample: login alice s3cret"},
	{Kind: KindLogout, Word: "logout", Category: CategoryPrivilege,
		Usage: "logout: logs out and returns to the base privilege level"},
	{Kind: KindRaise, Word: "raise", Category: CategoryPrivilege,
		Usage: "raise PASSWORD: raises the session to admin with the master password"},
	{Kind: KindSetPermAdmin, Word: "setpermadmin", Category: CategoryPrivilege, Mutating: true,
		Usage: "setpermadmin true|false: keeps every session at admin level"},
	{Kind: KindSetMasterPassword, Word: "setmasterpassword", Category: CategoryPrivilege, Mutating: true,
		Usage: "setmasterpassword PASSWORD: sets the master password used by raise"},

	{Kind: KindList, Word: "list", Category: CategoryPerson,
		Usage: "list: lists all persons"},
	{Kind: KindFind, Word: "find", Category: CategoryPerson,
		Usage: "find KEYWORD [MORE_KEYWORDS]...: lists persons whose names contain any keyword\nExample: find alice bob"},
	{Kind: KindView, Word: "view", Category: CategoryPerson,
		Usage: "view INDEX: shows the full profile of a person\nExample: view 1"},
	{Kind: KindAdd, Word: "add", Category: CategoryPerson, Mutating: true,
		Usage: "add n/NAME p/PHONE e/EMAIL a/ADDRESS [t/TAG]...: adds a person\nExample: add n/Alice Tan p/91234567 e/alice@example.com a/1 Main St t/year1"},
	{Kind: KindEdit, Word: "edit", Category: CategoryPerson, Mutating: true, SecondaryMutating: true,
		Usage: "edit INDEX [n/NAME] [p/PHONE] [e/EMAIL] [a/ADDRESS] [t/TAG]...: edits a person\nExample: edit 1 p/98765432"},
	{Kind: KindDelete, Word: "delete", Category: CategoryPerson, Mutating: true, SecondaryMutating: true,
		Usage: "delete INDEX: deletes a person\nExample: delete 2"},
	{Kind: KindClear, Word: "clear", Category: CategoryPerson, Mutating: true, SecondaryMutating: true,
		Usage: "clear: deletes every person"},

	{Kind: KindListExams, Word: "listexams", Category: CategoryExam,
		Usage: "listexams: lists all exams"},
	{Kind: KindAddExam, Word: "addexam", Category: CategoryExam, Mutating: true,
		Usage: "addexam s/SUBJECT en/EXAM_NAME d/DATE st/START et/END [dt/DETAILS]: adds an exam\nExample: addexam s/Math en/Midterm d/2024-03-01 st/09:00 et/11:00"},
	{Kind: KindDeleteExam, Word: "deleteexam", Category: CategoryExam, Mutating: true, SecondaryMutating: true,
		Usage: "deleteexam INDEX: deletes an exam and its registrations"},
	{Kind: KindRegisterExam, Word: "registerexam", Category: CategoryExam, Mutating: true, SecondaryMutating: true,
		Usage: "registerexam PERSON_INDEX EXAM_INDEX: registers a person for an exam\nExample: registerexam 1 2"},
	{Kind: KindDeregisterExam, Word: "deregisterexam", Category: CategoryExam, Mutating: true, SecondaryMutating: true,
		Usage: "deregisterexam PERSON_INDEX EXAM_INDEX: removes a person's exam registration"},

	{Kind: KindListAssessments, Word: "listassessments", Category: CategoryAssessment,
		Usage: "listassessments: lists all assessments"},
	{Kind: KindAddAssessment, Word: "addassessment", Category: CategoryAssessment, Mutating: true,
		Usage: "addassessment s/SUBJECT an/ASSESSMENT_NAME: adds an assessment\nExample: addassessment s/Math an/Quiz 1"},
	{Kind: KindDeleteAssessment, Word: "deleteassessment", Category: CategoryAssessment, Mutating: true, SecondaryMutating: true,
		Usage: "deleteassessment INDEX: deletes an assessment and its statistics"},
	{Kind: KindAddGrade, Word: "addgrade", Category: CategoryAssessment, Mutating: true,
		Usage: "addgrade PERSON_INDEX ASSESSMENT_INDEX g/GRADE: records a grade between 0 and 100\nExample: addgrade 1 2 g/85"},

	{Kind: KindListStatistics, Word: "liststatistics", Category: CategoryStatistics,
		Usage: "liststatistics: lists all statistics"},
	{Kind: KindAddStatistics, Word: "addstatistics", Category: CategoryStatistics, Mutating: true,
		Usage: "addstatistics ASSESSMENT_INDEX: computes statistics for an assessment"},

	{Kind: KindListFees, Word: "listfees", Category: CategoryFees,
		Usage: "listfees: lists persons with unpaid fees, earliest due first"},
	{Kind: KindEditFees, Word: "editfees", Category: CategoryFees, Mutating: true,
		Usage: "editfees INDEX f/AMOUNT d/DUE_DATE: sets a person's fees\nExample: editfees 1 f/120.50 d/2024-04-30"},
	{Kind: KindPaidFees, Word: "paidfees", Category: CategoryFees, Mutating: true,
		Usage: "paidfees INDEX: marks a person's fees as paid"},

	{Kind: KindAttendance, Word: "attendance", Category: CategoryAttendance, Mutating: true,
		Usage: "attendance INDEX d/DATE [absent]: marks a person present or absent\nExample: attendance 1 d/2024-02-01"},

	{Kind: KindAddAccount, Word: "addaccount", Category: CategoryAccount, Mutating: true,
		Usage: "addaccount INDEX u/USERNAME pw/PASSWORD r/basic|tutor|admin: creates a login for a person"},
	{Kind: KindDeleteAccount, Word: "deleteaccount", Category: CategoryAccount, Mutating: true,
		Usage: "deleteaccount INDEX: removes a person's login"},

	{Kind: KindListMenu, Word: "listmenu", Category: CategoryMenu,
		Usage: "listmenu: lists all menu items"},
	{Kind: KindAddMenu, Word: "addmenu", Category: CategoryMenu, Mutating: true,
		Usage: "addmenu n/NAME p/PRICE [t/TAG]...: adds a menu item\nExample: addmenu n/Chicken Rice p/4.50 t/rice"},
	{Kind: KindDeleteMenu, Word: "deletemenu", Category: CategoryMenu, Mutating: true,
		Usage: "deletemenu INDEX: deletes a menu item"},

	{Kind: KindListOrders, Word: "listorders", Category: CategoryOrder,
		Usage: "listorders: lists all orders"},
	{Kind: KindAddOrder, Word: "addorder", Category: CategoryOrder, Mutating: true, SecondaryMutating: true,
		Usage: "addorder n/CUSTOMER p/PHONE m/DISH [m/DISH]...: places an order\nExample: addorder n/Bob p/98765432 m/Chicken Rice m/Iced Tea"},
	{Kind: KindCompleteOrder, Word: "completeorder", Category: CategoryOrder, Mutating: true,
		Usage: "completeorder INDEX: marks an order completed"},
	{Kind: KindDeleteOrder, Word: "deleteorder", Category: CategoryOrder, Mutating: true,
		Usage: "deleteorder INDEX: deletes an order"},

	{Kind: KindListMembers, Word: "listmembers", Category: CategoryMember,
		Usage: "listmembers: lists all members"},
	{Kind: KindAddMember, Word: "addmember", Category: CategoryMember, Mutating: true,
		Usage: "addmember n/NAME p/PHONE e/EMAIL: adds a member"},
	{Kind: KindDeleteMember, Word: "deletemember", Category: CategoryMember, Mutating: true,
		Usage: "deletemember INDEX: deletes a member"},
	{Kind: KindRedeem, Word: "redeem", Category: CategoryMember, Mutating: true,
		Usage: "redeem INDEX POINTS: redeems a member's loyalty points\nExample: redeem 1 50"},

	{Kind: KindListEmployees, Word: "listemployees", Category: CategoryEmployee,
		Usage: "listemployees: lists all employees"},
	{Kind: KindAddEmployee, Word: "addemployee", Category: CategoryEmployee, Mutating: true,
		Usage: "addemployee n/NAME p/PHONE e/EMAIL pos/POSITION: adds an employee"},
	{Kind: KindDeleteEmployee, Word: "deleteemployee", Category: CategoryEmployee, Mutating: true,
		Usage: "deleteemployee INDEX: deletes an employee"},
}
