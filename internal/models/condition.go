package models

import (
	"errors"
	"fmt"
)

// Field — поле контента, по которому допускается фильтрация.
type Field string

const (
	// FieldKind — тип контента (например, "news").
	FieldKind Field = "kind"
	// FieldTags — ссылки на термины таксономии.
	FieldTags Field = "tags"
)

// Operator — оператор сравнения условия.
type Operator int

const (
	// OpEquals — точное совпадение со скалярным значением.
	OpEquals Operator = iota + 1
	// OpIn — вхождение в непустое множество значений.
	OpIn
)

// String возвращает человекочитаемое имя оператора.
func (o Operator) String() string {
	switch o {
	case OpEquals:
		return "EQUALS"
	case OpIn:
		return "IN"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ErrMalformedCondition — условие не соответствует своему оператору.
var ErrMalformedCondition = errors.New("malformed condition")

// FilterCondition — один предикат, объединяемый через AND в запрос контента.
//
// Варианты:
//   - OpEquals: значение в Scalar, Set пуст;
//   - OpIn: значения в Set (не пусто), Scalar == nil.
type FilterCondition struct {
	Field    Field
	Operator Operator
	Scalar   any
	Set      []any
}

// Equals создаёт условие field = value.
func Equals(field Field, value any) FilterCondition {
	return FilterCondition{Field: field, Operator: OpEquals, Scalar: value}
}

// In создаёт условие field IN (values...).
func In(field Field, values ...any) FilterCondition {
	set := make([]any, len(values))
	copy(set, values)

	return FilterCondition{Field: field, Operator: OpIn, Set: set}
}

// InInt64 — удобная обёртка над In для целочисленных идентификаторов.
func InInt64(field Field, ids []int64) FilterCondition {
	set := make([]any, 0, len(ids))
	for _, id := range ids {
		set = append(set, id)
	}

	return FilterCondition{Field: field, Operator: OpIn, Set: set}
}

// Validate проверяет согласованность оператора и значения.
// Поле не проверяется: набор поддерживаемых полей — забота построителя запроса.
func (c FilterCondition) Validate() error {
	switch c.Operator {
	case OpEquals:
		if c.Scalar == nil || len(c.Set) > 0 {
			return fmt.Errorf("%w: %s on %q expects a scalar", ErrMalformedCondition, c.Operator, c.Field)
		}
	case OpIn:
		if c.Scalar != nil || len(c.Set) == 0 {
			return fmt.Errorf("%w: %s on %q expects a non-empty set", ErrMalformedCondition, c.Operator, c.Field)
		}
	default:
		return fmt.Errorf("%w: unknown operator %s", ErrMalformedCondition, c.Operator)
	}

	return nil
}
