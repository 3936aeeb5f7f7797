package routing_test

import (
	"testing"

	"github.com/marcelsud/lead-router/routing"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	data := map[string]any{
		"budget":  float64(75000),
		"email":   "jane@example.com",
		"city":    "Lisbon",
		"agreed":  true,
		"score":   "42",
		"comment": nil,
	}

	t.Run("numeric comparisons", func(t *testing.T) {
		cases := []struct {
			name string
			cond routing.Condition
			want bool
		}{
			{"greater than matches", routing.Condition{Field: "budget", Operator: routing.GreaterThan, Value: 50000}, true},
			{"greater than fails", routing.Condition{Field: "budget", Operator: routing.GreaterThan, Value: 100000}, false},
			{"greater or equal on boundary", routing.Condition{Field: "budget", Operator: routing.GreaterOrEqual, Value: 75000}, true},
			{"less than", routing.Condition{Field: "budget", Operator: routing.LessThan, Value: 80000}, true},
			{"less or equal fails", routing.Condition{Field: "budget", Operator: routing.LessOrEqual, Value: 74999}, false},
			{"numeric string field coerces", routing.Condition{Field: "score", Operator: routing.GreaterThan, Value: 40}, true},
			{"numeric condition value as string", routing.Condition{Field: "budget", Operator: routing.GreaterThan, Value: "50000"}, true},
			{"non-numeric field never compares", routing.Condition{Field: "city", Operator: routing.GreaterThan, Value: 1}, false},
			{"non-numeric value never compares", routing.Condition{Field: "budget", Operator: routing.LessThan, Value: "a lot"}, false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.Equal(t, tc.want, tc.cond.Evaluate(data))
			})
		}
	})

	t.Run("loose equality", func(t *testing.T) {
		assert.True(t, routing.Condition{Field: "budget", Operator: routing.Equal, Value: "75000"}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "score", Operator: routing.Equal, Value: 42}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "city", Operator: routing.Equal, Value: "Lisbon"}.Evaluate(data))
		assert.False(t, routing.Condition{Field: "city", Operator: routing.Equal, Value: "Porto"}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "agreed", Operator: routing.Equal, Value: 1}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "agreed", Operator: routing.Equal, Value: "1"}.Evaluate(data))
		// a bool only equals its numeric form, never its name
		assert.False(t, routing.Condition{Field: "agreed", Operator: routing.Equal, Value: "true"}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "agreed", Operator: routing.NotEqual, Value: "true"}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "city", Operator: routing.NotEqual, Value: "Porto"}.Evaluate(data))
		assert.False(t, routing.Condition{Field: "budget", Operator: routing.NotEqual, Value: 75000}.Evaluate(data))
	})

	t.Run("string operators", func(t *testing.T) {
		assert.True(t, routing.Condition{Field: "email", Operator: routing.Contains, Value: "@example"}.Evaluate(data))
		assert.False(t, routing.Condition{Field: "email", Operator: routing.Contains, Value: "@corp"}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "email", Operator: routing.StartsWith, Value: "jane"}.Evaluate(data))
		assert.True(t, routing.Condition{Field: "email", Operator: routing.EndsWith, Value: ".com"}.Evaluate(data))
		// numeric field values are coerced to their string form for string ops
		assert.True(t, routing.Condition{Field: "budget", Operator: routing.StartsWith, Value: "75"}.Evaluate(data))
	})

	t.Run("missing field returns false for every operator", func(t *testing.T) {
		operators := []routing.Operator{
			routing.GreaterThan, routing.GreaterOrEqual, routing.LessThan, routing.LessOrEqual,
			routing.Equal, routing.NotEqual, routing.Contains, routing.StartsWith, routing.EndsWith,
		}
		for _, op := range operators {
			cond := routing.Condition{Field: "does_not_exist", Operator: op, Value: "anything"}
			assert.False(t, cond.Evaluate(data), "operator %s", op)
		}
	})

	t.Run("null field returns false", func(t *testing.T) {
		cond := routing.Condition{Field: "comment", Operator: routing.Equal, Value: ""}
		assert.False(t, cond.Evaluate(data))
	})

	t.Run("unknown operator returns false", func(t *testing.T) {
		cond := routing.Condition{Field: "budget", Operator: routing.Operator("matches"), Value: 75000}
		assert.False(t, cond.Evaluate(data))
	})

	t.Run("nil data returns false", func(t *testing.T) {
		cond := routing.Condition{Field: "budget", Operator: routing.Equal, Value: 75000}
		assert.False(t, cond.Evaluate(nil))
	})
}
