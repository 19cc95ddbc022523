package domain

// SeedCases is written to storage the first time the registry is read.
func SeedCases() []Case {
	return []Case{
		{ID: "seed-case-1", CaseNumber: "2025-CR-001", Title: "State vs. John Smith", Type: TypeCriminal, Status: StatusActive, Judge: "Hon. Sarah Williams", NextHearing: "2025-02-10", Priority: PriorityHigh, CreatedAt: "2025-01-02"},
		{ID: "seed-case-2", CaseNumber: "2025-CV-045", Title: "Johnson vs. ABC Corporation", Type: TypeCivil, Status: StatusPending, Judge: "Hon. Michael Chen", NextHearing: "2025-02-15", Priority: PriorityMedium, CreatedAt: "2025-01-05"},
		{ID: "seed-case-3", CaseNumber: "2025-FM-012", Title: "In re Marriage of Davis", Type: TypeFamily, Status: StatusActive, Judge: "Hon. Sarah Williams", NextHearing: "2025-02-20", Priority: PriorityMedium, CreatedAt: "2025-01-08"},
		{ID: "seed-case-4", CaseNumber: "2025-TR-230", Title: "City vs. Robert Lee", Type: TypeTraffic, Status: StatusClosed, Judge: "Hon. David Park", Priority: PriorityLow, CreatedAt: "2025-01-10"},
	}
}
