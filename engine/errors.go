package engine

import "errors"

// ErrConfiguration indicates invalid generator parameters: a pool smaller
// than two cities or an inverted distance range. This is an operator
// mistake, not something a player can trigger.
var ErrConfiguration = errors.New("engine: invalid generator configuration")

// ErrInvalidRoute indicates a submitted route that breaks the tour rules:
// wrong endpoints, duplicate or unknown cities, an empty selection, or a
// selection too large for the exact solver. Recoverable by resubmitting.
var ErrInvalidRoute = errors.New("engine: invalid route")

// ErrSearchBudget indicates a zero or negative random-search budget.
var ErrSearchBudget = errors.New("engine: search budget must be positive")
