// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package expense

// Record is one expense row. Date is ISO-8601 text (YYYY-MM-DD); the
// category is free text and is never checked against the categories
// resource, which is advisory only.
type Record struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory"`
	Note        string  `json:"note"`
}

// CategorySummary aggregates the records of one category over a date range.
type CategorySummary struct {
	Category    string  `json:"category"`
	TotalAmount float64 `json:"total_amount"`
	Count       int64   `json:"count"`
}

// Stats describes the ledger as a whole, for the status command.
type Stats struct {
	Records     int64
	Categories  int64
	TotalAmount float64
	FirstDate   string
	LastDate    string
}
