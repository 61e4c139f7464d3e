// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package expense

import (
	"context"
	"sort"
	"strings"
)

// Field names cannot be bound as statement parameters, so the targeted
// mutations map each allow-listed field to a fixed, pre-written statement.
// No SQL text is ever assembled from caller input.

var removeStatements = map[string]string{
	"id":       `DELETE FROM expenses WHERE id = ?`,
	"category": `DELETE FROM expenses WHERE category = ?`,
	"date":     `DELETE FROM expenses WHERE date = ?`,
	"amount":   `DELETE FROM expenses WHERE amount = ?`,
}

// updateStatements deliberately excludes id: the primary key is immutable
// once assigned.
var updateStatements = map[string]string{
	"date":        `UPDATE expenses SET date = ? WHERE id = ?`,
	"category":    `UPDATE expenses SET category = ? WHERE id = ?`,
	"amount":      `UPDATE expenses SET amount = ? WHERE id = ?`,
	"subcategory": `UPDATE expenses SET subcategory = ? WHERE id = ?`,
	"note":        `UPDATE expenses SET note = ? WHERE id = ?`,
}

// RemoveFields lists the fields remove may target, sorted.
func RemoveFields() []string { return sortedKeys(removeStatements) }

// UpdateFields lists the fields update may target, sorted.
func UpdateFields() []string { return sortedKeys(updateStatements) }

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add inserts one expense record and returns its assigned id. No
// validation is applied to the values themselves: any date string,
// amount, or category is accepted as-is.
func (c *Client) Add(ctx context.Context, date string, amount float64, category, subcategory, note string) (int64, error) {
	res, err := c.db.ExecContext(ctx, `
		INSERT INTO expenses (date, amount, category, subcategory, note)
		VALUES (?, ?, ?, ?, ?)
	`, date, amount, category, subcategory, note)
	if err != nil {
		return 0, storageError("insert expense", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, storageError("insert expense", err)
	}
	return id, nil
}

// RemoveBy deletes every record whose field equals value. The field must
// be one of RemoveFields; anything else is rejected before any statement
// runs. Values are bound as text and coerced by SQLite's type affinity,
// so numeric strings match id and amount columns. Returns the number of
// rows deleted; zero matches is not an error.
func (c *Client) RemoveBy(ctx context.Context, field, value string) (int64, error) {
	stmt, ok := removeStatements[field]
	if !ok {
		return 0, validationErrorf("invalid field %q for remove; must be one of: %s",
			field, strings.Join(RemoveFields(), ", "))
	}

	res, err := c.db.ExecContext(ctx, stmt, value)
	if err != nil {
		return 0, storageError("remove expenses", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError("remove expenses", err)
	}
	return n, nil
}

// UpdateField sets one field of the record matching id. The field must be
// one of UpdateFields; id itself is not updatable. Returns the number of
// rows changed (0 when no record has that id).
func (c *Client) UpdateField(ctx context.Context, id int64, field, newValue string) (int64, error) {
	stmt, ok := updateStatements[field]
	if !ok {
		return 0, validationErrorf("invalid field %q for update; must be one of: %s",
			field, strings.Join(UpdateFields(), ", "))
	}

	res, err := c.db.ExecContext(ctx, stmt, newValue, id)
	if err != nil {
		return 0, storageError("update expense", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageError("update expense", err)
	}
	return n, nil
}
