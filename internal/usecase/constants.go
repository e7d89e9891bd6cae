package usecase

const (
	// EntryKindIncome and EntryKindExpense label recorded entries.
	EntryKindIncome  = "income"
	EntryKindExpense = "expense"

	// DefaultReportFilename is offered to the user when downloading a report.
	DefaultReportFilename = "financial_report.xlsx"

	// ReportContentType is the MIME type of an OpenXML spreadsheet.
	ReportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)
