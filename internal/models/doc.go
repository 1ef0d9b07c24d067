// Package models defines the core domain models for the roommates backend.
//
// # Models
//
//   - Person: a registered roommate; belongs to at most one Room
//   - Room: a household, joined through its invite code
//   - Chore: a task or reminder, optionally rotating among roommates
//   - ExpensePeriod: a bookkeeping window; at most one is open per Room
//   - Expense / ExpenseSplit: a payment and each roommate's share of it
//   - Notification: a room-scoped message between roommates
//
// # Identity
//
// All entities are keyed by int64 IDs assigned by the store. Relationships
// are expressed as IDs, never pointers, so models can be loaded and mutated
// independently inside one transaction.
//
// # Ownership
//
// A Room owns its expense periods (and transitively their expenses and
// splits) and its notifications. Chores are owned through membership: a
// chore belongs to the room of its assignee.
//
// # Time
//
// Dates are naive UTC instants. Callers normalize to UTC before handing
// values to the core; stores persist Unix seconds.
package models
