package config

// Specification of selector tree child ordering on output.
// ENUM(none, canonical)
type SortMode int
