// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ModelCallLog is the predicate function for modelcalllog builders.
type ModelCallLog func(*sql.Selector)

// ModelEntry is the predicate function for modelentry builders.
type ModelEntry func(*sql.Selector)

// PurchaseEvent is the predicate function for purchaseevent builders.
type PurchaseEvent func(*sql.Selector)

// SummaryCache is the predicate function for summarycache builders.
type SummaryCache func(*sql.Selector)

// TagMaster is the predicate function for tagmaster builders.
type TagMaster func(*sql.Selector)

// UsageRecord is the predicate function for usagerecord builders.
type UsageRecord func(*sql.Selector)

// UserTagUsage is the predicate function for usertagusage builders.
type UserTagUsage func(*sql.Selector)
