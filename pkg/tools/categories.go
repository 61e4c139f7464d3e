// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	_ "embed"
	"encoding/json"
	"os"
)

// CategoriesURI identifies the categories resource.
const CategoriesURI = "expense://categories"

// CategoriesMIMEType is the content type of the resource document.
const CategoriesMIMEType = "application/json"

//go:embed categories.json
var defaultCategoriesJSON string

// Categories returns the categories resource document: the file at path
// if it holds valid JSON, the embedded default list otherwise. The
// document is advisory metadata only; nothing checks a record's category
// against it.
func Categories(path string) string {
	if path != "" {
		if data, err := os.ReadFile(path); err == nil && json.Valid(data) {
			return string(data)
		}
	}
	return defaultCategoriesJSON
}

// DefaultCategories returns the embedded default category labels.
func DefaultCategories() []string {
	var doc struct {
		Categories []string `json:"categories"`
	}
	// The embedded document is fixed at build time and always valid.
	_ = json.Unmarshal([]byte(defaultCategoriesJSON), &doc)
	return doc.Categories
}
