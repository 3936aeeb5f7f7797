package routing

import (
	"fmt"
	"strconv"
	"strings"
)

/* Operator identifies how a condition compares a lead field to its value
 * The set mirrors what the dashboard rule editor offers
 */
type Operator string

const (
	GreaterThan    Operator = ">"
	GreaterOrEqual Operator = ">="
	LessThan       Operator = "<"
	LessOrEqual    Operator = "<="
	Equal          Operator = "=="
	NotEqual       Operator = "!="
	Contains       Operator = "contains"
	StartsWith     Operator = "startsWith"
	EndsWith       Operator = "endsWith"
)

// Condition is one field/operator/value test against lead form data
type Condition struct {
	Field    string   `json:"field"`
	Operator Operator `json:"operator"`
	Value    any      `json:"value"`
}

/* Evaluate tests the condition against arbitrary lead form data
 * Fail-closed by contract: a missing or null field never matches, an unknown
 * operator never matches, and no input can make it panic
 * Safe for concurrent use, no side effects
 */
func (c Condition) Evaluate(data map[string]any) bool {
	fieldValue, ok := data[c.Field]
	if !ok || fieldValue == nil {
		return false
	}

	switch c.Operator {
	case GreaterThan, GreaterOrEqual, LessThan, LessOrEqual:
		left, lok := coerceNumber(fieldValue)
		right, rok := coerceNumber(c.Value)
		if !lok || !rok {
			return false
		}
		switch c.Operator {
		case GreaterThan:
			return left > right
		case GreaterOrEqual:
			return left >= right
		case LessThan:
			return left < right
		default:
			return left <= right
		}
	case Equal:
		return looseEqual(fieldValue, c.Value)
	case NotEqual:
		return !looseEqual(fieldValue, c.Value)
	case Contains:
		return strings.Contains(coerceString(fieldValue), coerceString(c.Value))
	case StartsWith:
		return strings.HasPrefix(coerceString(fieldValue), coerceString(c.Value))
	case EndsWith:
		return strings.HasSuffix(coerceString(fieldValue), coerceString(c.Value))
	default:
		return false
	}
}

/* looseEqual compares two scalars without regard to their stored type:
 * "75000" == 75000 holds, matching how rule values typed into the dashboard
 * compare against JSON form data
 * A bool compares through its numeric form only, so true matches 1 and "1"
 * but never the string "true"
 */
func looseEqual(a, b any) bool {
	_, aBool := a.(bool)
	_, bBool := b.(bool)
	if aBool || bBool {
		an, aok := coerceNumber(a)
		bn, bok := coerceNumber(b)
		return aok && bok && an == bn
	}

	if an, aok := coerceNumber(a); aok {
		if bn, bok := coerceNumber(b); bok {
			return an == bn
		}
	}
	return coerceString(a) == coerceString(b)
}

// coerceNumber leniently converts a scalar to float64
func coerceNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// coerceString converts a scalar to its string form ("5", not "5.000000")
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}
