// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

// Package expense provides the SQLite-backed expense ledger.
//
// A Client owns a single database connection for the life of the
// process. The connection targets either a durable file or, in cloud
// deployments, a non-durable in-memory database. Handle wraps lazy,
// race-safe first-use initialization for callers that share one
// connection across transports.
//
// Mutations execute exactly one statement each; there is no multi-step
// transaction coordination anywhere in this package.
package expense
