// Package filter provides a composable boolean expression tree evaluated
// against metadata.ImageRecord values.
//
// List queries are translated into a single expression: each supplied
// criterion becomes a leaf node and the leaves are combined with And. The
// tags criterion is the one disjunctive clause (Or of Contains across the
// candidate tags), nested inside the conjunction. An empty And accepts every
// record, so a query with no criteria degrades to a full listing.
//
// Expressions are immutable and safe for concurrent evaluation. The tree
// form keeps the predicate independently unit-testable instead of being
// accumulated through nullable condition mutation.
package filter

import (
	"strings"

	"github.com/marmos91/imagevault/pkg/store/metadata"
)

// Field names a record attribute a leaf expression inspects.
type Field int

const (
	// FieldUserID is the record owner, matched exactly.
	FieldUserID Field = iota

	// FieldTitle is the optional title, matched by substring.
	FieldTitle

	// FieldLocation is the optional location, matched by substring.
	FieldLocation

	// FieldCreatedAt is the creation timestamp, compared lexicographically
	// (valid for ISO-8601 strings).
	FieldCreatedAt

	// FieldTags is the tag set; Contains matches set membership.
	FieldTags
)

// Expr is a boolean expression over an image record.
type Expr interface {
	// Matches evaluates the expression against a record.
	Matches(record *metadata.ImageRecord) bool
}

// And matches when every child matches. And() with no children matches
// everything.
func And(children ...Expr) Expr {
	return andExpr(children)
}

// Or matches when at least one child matches. Or() with no children matches
// nothing.
func Or(children ...Expr) Expr {
	return orExpr(children)
}

// Eq matches when the field equals value exactly.
func Eq(field Field, value string) Expr {
	return leaf{op: opEq, field: field, value: value}
}

// Contains matches substring presence for string fields and membership for
// FieldTags. Matching is case-sensitive.
func Contains(field Field, value string) Expr {
	return leaf{op: opContains, field: field, value: value}
}

// Gte matches when the field is lexicographically >= value (inclusive lower
// bound).
func Gte(field Field, value string) Expr {
	return leaf{op: opGte, field: field, value: value}
}

// Lte matches when the field is lexicographically <= value (inclusive upper
// bound).
func Lte(field Field, value string) Expr {
	return leaf{op: opLte, field: field, value: value}
}

type andExpr []Expr

func (e andExpr) Matches(record *metadata.ImageRecord) bool {
	for _, child := range e {
		if !child.Matches(record) {
			return false
		}
	}
	return true
}

type orExpr []Expr

func (e orExpr) Matches(record *metadata.ImageRecord) bool {
	for _, child := range e {
		if child.Matches(record) {
			return true
		}
	}
	return false
}

type leafOp int

const (
	opEq leafOp = iota
	opContains
	opGte
	opLte
)

type leaf struct {
	op    leafOp
	field Field
	value string
}

func (l leaf) Matches(record *metadata.ImageRecord) bool {
	if l.field == FieldTags {
		// Only membership is meaningful on the tag set.
		return l.op == opContains && record.HasTag(l.value)
	}

	fieldValue := fieldString(l.field, record)

	switch l.op {
	case opEq:
		return fieldValue == l.value
	case opContains:
		return strings.Contains(fieldValue, l.value)
	case opGte:
		return fieldValue >= l.value
	case opLte:
		return fieldValue <= l.value
	default:
		return false
	}
}

func fieldString(field Field, record *metadata.ImageRecord) string {
	switch field {
	case FieldUserID:
		return record.UserID
	case FieldTitle:
		return record.Title
	case FieldLocation:
		return record.Location
	case FieldCreatedAt:
		return record.CreatedAt
	default:
		return ""
	}
}

// Predicate adapts an expression to the metadata.Predicate scan filter type.
func Predicate(expr Expr) metadata.Predicate {
	return expr.Matches
}
