package dto

import (
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null is_not_null"`
}

// GetQuery renders the filter as a MongoDB query document. Like is a case-insensitive
// substring match: the value is escaped so it is matched literally.
func (f *Filter) GetQuery() bson.M {
	switch f.Operator {
	case FilterOperatorEq:
		return bson.M{f.Field: f.Value}
	case FilterOperatorLike:
		pattern := regexp.QuoteMeta(fmt.Sprintf("%v", f.Value))

		return bson.M{f.Field: primitive.Regex{Pattern: pattern, Options: "i"}}
	case FilterOperatorIn:
		return bson.M{f.Field: bson.M{"$in": f.Value}}
	case FilterOperatorNotEq:
		return bson.M{f.Field: bson.M{"$ne": f.Value}}
	case FilterOperatorLessEq:
		return bson.M{f.Field: bson.M{"$lte": f.Value}}
	case FilterOperatorGreaterEq:
		return bson.M{f.Field: bson.M{"$gte": f.Value}}
	case FilterIsNotNull:
		return bson.M{f.Field: bson.M{"$ne": nil}}
	case FilterIsNull:
		return bson.M{f.Field: nil}
	default:
		return bson.M{}
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// GetQuery combines the group's filters with $and (default) or $or. An empty group matches everything.
func (f *FilterGroup) GetQuery() bson.M {
	clauses := []bson.M{}

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			clauses = append(clauses, fill.GetQuery())
		case FilterGroup:
			if query := fill.GetQuery(); len(query) > 0 {
				clauses = append(clauses, query)
			}
		}
	}

	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	}

	if f.Operator == FilterGroupOperatorOr {
		return bson.M{"$or": clauses}
	}

	return bson.M{"$and": clauses}
}
