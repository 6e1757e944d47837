package rules

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/scopes/internal/flags"
)

func check(t *testing.T, factory flags.RuleFactory, values flags.Values, value any) bool {
	t.Helper()
	ok, err := factory(values).Check(context.Background(), value, true)
	require.NoError(t, err)
	return ok
}

func message(t *testing.T, factory flags.RuleFactory, values flags.Values) string {
	t.Helper()
	msg, err := factory(values).Message(context.Background())
	require.NoError(t, err)
	return msg
}

func TestAbsentValues(t *testing.T) {
	ctx := context.Background()
	vacuous := map[string]flags.RuleFactory{
		"OneOf":         OneOf(Strings("a")),
		"AllOneOf":      AllOneOf(Strings("a")),
		"NotPartOf":     NotPartOf(Strings("a")),
		"NoneArePartOf": NoneArePartOf(Strings("a")),
		"Unique":        Unique(),
		"Length":        Length(Const(3)),
		"GreaterThan":   GreaterThan(Const(1)),
		"LessThan":      LessThan(Const(1)),
		"Positive":      Positive(),
		"Negative":      Negative(),
		"PathExists":    PathExists(PathOptions{}),
		"Custom": Custom(func(context.Context, any, flags.Values) (bool, error) {
			return false, nil
		}),
	}

	for name, factory := range vacuous {
		t.Run(name, func(t *testing.T) {
			ok, err := factory(flags.Values{}).Check(ctx, nil, false)
			require.NoError(t, err)
			require.True(t, ok)
		})
	}

	ok, err := Required()(flags.Values{}).Check(ctx, nil, false)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, "Must be supplied.", message(t, Required(), flags.Values{}))
}

func TestRequired_PresentValues(t *testing.T) {
	// supplied falsy values still count as supplied
	for _, v := range []any{"", int64(0), false, nil, []any{}} {
		require.True(t, check(t, Required(), flags.Values{}, v), "value %#v", v)
	}
}

func TestOneOf(t *testing.T) {
	r := OneOf(Strings("wood", "stone"))

	require.True(t, check(t, r, flags.Values{}, "wood"))
	require.False(t, check(t, r, flags.Values{}, "straw"))
	require.Equal(t, "Must be one of wood, stone", message(t, r, flags.Values{}))
}

func TestOneOf_NumericKinds(t *testing.T) {
	r := OneOf(Items(1, 2, 3))

	require.True(t, check(t, r, flags.Values{}, int64(3)))
	require.True(t, check(t, r, flags.Values{}, 2.0))
	require.False(t, check(t, r, flags.Values{}, int64(4)))
}

func TestOneOf_DependsOnValues(t *testing.T) {
	r := OneOf(func(_ context.Context, values flags.Values) ([]any, error) {
		return []any{values["other"]}, nil
	})

	require.True(t, check(t, r, flags.Values{"other": "x"}, "x"))
	require.False(t, check(t, r, flags.Values{"other": "y"}, "x"))
}

func TestOneOf_ListError(t *testing.T) {
	boom := errors.New("store unavailable")
	r := OneOf(func(context.Context, flags.Values) ([]any, error) {
		return nil, boom
	})

	_, err := r(flags.Values{}).Check(context.Background(), "x", true)
	require.ErrorIs(t, err, boom)

	_, err = r(flags.Values{}).Message(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestAllOneOf(t *testing.T) {
	r := AllOneOf(Strings("id", "name", "material"))

	require.True(t, check(t, r, flags.Values{}, []any{"id", "name"}))
	require.True(t, check(t, r, flags.Values{}, []any{}))
	require.False(t, check(t, r, flags.Values{}, []any{"id", "colour"}))
	require.Equal(t, "All must be one of id, name, material", message(t, r, flags.Values{}))

	_, err := r(flags.Values{}).Check(context.Background(), "id", true)
	require.Error(t, err)
}

func TestNotPartOf(t *testing.T) {
	r := NotPartOf(Strings("dolly", "shaun"))

	require.True(t, check(t, r, flags.Values{}, "timmy"))
	require.False(t, check(t, r, flags.Values{}, "dolly"))
	require.Equal(t, "Must not be part of dolly, shaun", message(t, r, flags.Values{}))
}

func TestNoneArePartOf(t *testing.T) {
	r := NoneArePartOf(Strings("a", "b"))

	require.True(t, check(t, r, flags.Values{}, []any{"c", "d"}))
	require.False(t, check(t, r, flags.Values{}, []any{"c", "b"}))
	require.Equal(t, "None must be part of a, b", message(t, r, flags.Values{}))
}

func TestUnique(t *testing.T) {
	r := Unique()

	require.True(t, check(t, r, flags.Values{}, []any{"a", "b", "c"}))
	require.False(t, check(t, r, flags.Values{}, []any{"a", "b", "a"}))
	require.False(t, check(t, r, flags.Values{}, []any{int64(1), 1.0}))
	require.Equal(t, "Elements must be unique.", message(t, r, flags.Values{}))
}

func TestLength(t *testing.T) {
	r := Length(Const(3))

	require.True(t, check(t, r, flags.Values{}, "abc"))
	require.True(t, check(t, r, flags.Values{}, "äöü"))
	require.False(t, check(t, r, flags.Values{}, "ab"))
	require.True(t, check(t, r, flags.Values{}, []any{1, 2, 3}))
	require.False(t, check(t, r, flags.Values{}, []any{1}))
	require.Equal(t, "Must have length 3.", message(t, r, flags.Values{}))

	_, err := r(flags.Values{}).Check(context.Background(), int64(3), true)
	require.Error(t, err)
}

func TestOrdering(t *testing.T) {
	from := time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2021, time.August, 13, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		factory flags.RuleFactory
		value   any
		want    bool
	}{
		{"int greater", GreaterThan(Const(5)), int64(6), true},
		{"int equal is not greater", GreaterThan(Const(5)), int64(5), false},
		{"float vs int bound", GreaterThan(Const(5)), 5.5, true},
		{"int less", LessThan(Const(10)), int64(9), true},
		{"int not less", LessThan(Const(10)), int64(10), false},
		{"positive", Positive(), int64(1), true},
		{"zero not positive", Positive(), int64(0), false},
		{"negative", Negative(), -0.5, true},
		{"strings", GreaterThan(Const("apple")), "banana", true},
		{"dates", GreaterThan(Const(from)), to, true},
		{"dates reversed", LessThan(Const(from)), to, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, check(t, tt.factory, flags.Values{}, tt.value))
		})
	}
}

func TestOrdering_DependsOnOtherFlag(t *testing.T) {
	from := time.Date(2021, time.August, 1, 0, 0, 0, 0, time.UTC)
	r := GreaterThan(func(_ context.Context, values flags.Values) (any, error) {
		return values["from"], nil
	})
	values := flags.Values{"from": from}

	require.True(t, check(t, r, values, from.AddDate(0, 0, 1)))
	require.False(t, check(t, r, values, from))
	require.Equal(t, "Must be greater than 2021-08-01", message(t, r, values))
}

func TestOrdering_Messages(t *testing.T) {
	require.Equal(t, "Must be greater than 0", message(t, Positive(), flags.Values{}))
	require.Equal(t, "Must be less than 10", message(t, LessThan(Const(10)), flags.Values{}))
}

func TestOrdering_Incomparable(t *testing.T) {
	_, err := GreaterThan(Const(1))(flags.Values{}).Check(context.Background(), "one", true)
	require.Error(t, err)
	require.Contains(t, err.Error(), "cannot compare")
}

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "data.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0o600))
	missing := filepath.Join(dir, "missing", "data.json")

	require.True(t, check(t, PathExists(PathOptions{}), flags.Values{}, file))
	require.False(t, check(t, PathExists(PathOptions{}), flags.Values{}, missing))
	require.True(t, check(t, PathExists(PathOptions{Parent: true}), flags.Values{}, filepath.Join(dir, "new.json")))
	require.False(t, check(t, PathExists(PathOptions{Parent: true}), flags.Values{}, missing))
	require.Equal(t, "Path must exist.", message(t, PathExists(PathOptions{}), flags.Values{}))
}

func TestCustom(t *testing.T) {
	lower := Custom(func(_ context.Context, value any, _ flags.Values) (bool, error) {
		s, _ := value.(string)
		return s != "" && s == strings.ToLower(s), nil
	})

	require.True(t, check(t, lower, flags.Values{}, "groceries"))
	require.False(t, check(t, lower, flags.Values{}, "Groceries"))
	require.Equal(t, "Custom Flag Rule", message(t, lower, flags.Values{}))

	withMsg := CustomMessage("Must be lowercase.", func(context.Context, any, flags.Values) (bool, error) {
		return false, nil
	})
	require.Equal(t, "Must be lowercase.", message(t, withMsg, flags.Values{}))
}

func TestCustom_SeesValues(t *testing.T) {
	r := Custom(func(_ context.Context, value any, values flags.Values) (bool, error) {
		return value != values["other"], nil
	})

	require.True(t, check(t, r, flags.Values{"other": "a"}, "b"))
	require.False(t, check(t, r, flags.Values{"other": "a"}, "a"))
}
