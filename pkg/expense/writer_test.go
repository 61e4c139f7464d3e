// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package expense

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_AssignsIncreasingIDs(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id1, err := c.Add(ctx, "2026-01-10", 10, "Food & Dining", "groceries", "weekly shop")
	require.NoError(t, err)
	id2, err := c.Add(ctx, "2026-01-11", 20, "Transportation", "", "")
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}

func TestAdd_AcceptsArbitraryValues(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	// No date-format, sign, or category-membership validation.
	_, err := c.Add(ctx, "not-a-date", -3.50, "NotARealCategory", "", "")
	require.NoError(t, err)
}

func TestRemoveBy_InvalidField(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Add(ctx, "2026-01-10", 10, "Food & Dining", "", "")
	require.NoError(t, err)

	_, err = c.RemoveBy(ctx, "note", "weekly shop")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Nothing was deleted.
	records, err := c.ListRange(ctx, "2026-01-01", "2026-12-31", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRemoveBy_InjectionAttemptRejected(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Add(ctx, "2026-01-10", 10, "Food & Dining", "", "")
	require.NoError(t, err)

	_, err = c.RemoveBy(ctx, "id = id; --", "1")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	records, err := c.ListRange(ctx, "2026-01-01", "2026-12-31", 0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestRemoveBy_NoMatchIsZeroCount(t *testing.T) {
	c := newTestClient(t)

	n, err := c.RemoveBy(context.Background(), "category", "NoSuchCategory")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestRemoveBy_MatchesMultipleRows(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := c.Add(ctx, fmt.Sprintf("2026-01-%02d", i+1), 5, "Entertainment", "", "")
		require.NoError(t, err)
	}
	_, err := c.Add(ctx, "2026-01-04", 5, "Travel", "", "")
	require.NoError(t, err)

	n, err := c.RemoveBy(ctx, "category", "Entertainment")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	records, err := c.ListRange(ctx, "2026-01-01", "2026-12-31", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Travel", records[0].Category)
}

func TestRemoveBy_ByID(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id, err := c.Add(ctx, "2026-01-10", 10, "Food & Dining", "", "")
	require.NoError(t, err)

	// Values are bound as text; SQLite's affinity coerces for the
	// INTEGER id column.
	n, err := c.RemoveBy(ctx, "id", fmt.Sprintf("%d", id))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestRoundTrip_InsertThenDeleteAllByID(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	ids := make([]int64, 0, 5)
	for i := 0; i < 5; i++ {
		id, err := c.Add(ctx, fmt.Sprintf("2026-02-%02d", i+1), float64(i)+0.5, "Shopping", "", "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	for _, id := range ids {
		n, err := c.RemoveBy(ctx, "id", fmt.Sprintf("%d", id))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	}

	records, err := c.ListRange(ctx, "0000-01-01", "9999-12-31", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpdateField_InvalidField(t *testing.T) {
	c := newTestClient(t)

	_, err := c.UpdateField(context.Background(), 1, "color", "red")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateField_IDNotUpdatable(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id, err := c.Add(ctx, "2026-01-10", 10, "Food & Dining", "", "")
	require.NoError(t, err)

	_, err = c.UpdateField(ctx, id, "id", "999")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateField_ChangesOnlyThatRow(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id1, err := c.Add(ctx, "2026-01-10", 10, "Food & Dining", "lunch", "soup")
	require.NoError(t, err)
	id2, err := c.Add(ctx, "2026-01-11", 20, "Food & Dining", "dinner", "pasta")
	require.NoError(t, err)

	n, err := c.UpdateField(ctx, id1, "category", "Business")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	records, err := c.ListRange(ctx, "2026-01-01", "2026-12-31", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byID := map[int64]Record{records[0].ID: records[0], records[1].ID: records[1]}
	assert.Equal(t, "Business", byID[id1].Category)
	assert.Equal(t, "soup", byID[id1].Note)
	assert.Equal(t, "Food & Dining", byID[id2].Category)
}

func TestUpdateField_MissingIDIsZeroCount(t *testing.T) {
	c := newTestClient(t)

	n, err := c.UpdateField(context.Background(), 12345, "note", "nothing here")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpdateField_SubcategoryAndNote(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	id, err := c.Add(ctx, "2026-01-10", 10, "Travel", "", "")
	require.NoError(t, err)

	for field, value := range map[string]string{
		"subcategory": "flights",
		"note":        "berlin trip",
		"amount":      "240.10",
		"date":        "2026-01-12",
	} {
		n, err := c.UpdateField(ctx, id, field, value)
		require.NoError(t, err, "field %s", field)
		assert.Equal(t, int64(1), n, "field %s", field)
	}

	records, err := c.ListRange(ctx, "2026-01-01", "2026-12-31", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "flights", records[0].Subcategory)
	assert.Equal(t, "berlin trip", records[0].Note)
	assert.Equal(t, 240.10, records[0].Amount)
	assert.Equal(t, "2026-01-12", records[0].Date)
}

func TestFieldLists(t *testing.T) {
	assert.Equal(t, []string{"amount", "category", "date", "id"}, RemoveFields())
	assert.Equal(t, []string{"amount", "category", "date", "note", "subcategory"}, UpdateFields())
}
