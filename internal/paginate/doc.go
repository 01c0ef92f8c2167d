// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package paginate drives cursor-based AWS list operations. An Executor issues
// one call at a time, hands every page to a sink in call order, and stops when
// the caller asked for a single page, the server returns no continuation
// token, or the client-side item budget is spent.
//
// Two policies exist. ServerDriven leaves page sizing to the caller and the
// service and reports every failure. ClientCapped shrinks each requested page
// to the remaining budget and, when a budgeted run fails after it already
// delivered items, ends quietly with what it has.
package paginate
