package logic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"datatable/internal/logic"
)

type audit struct {
	CreatedBy string
}

type record struct {
	*audit
	ID      int
	Label   string `table:"title"`
	Secret  string `table:"-"`
	hidden  string
	Details map[string]any
}

func TestFieldAccessorStruct(t *testing.T) {
	t.Parallel()

	acc := logic.FieldAccessor[record]()
	row := record{ID: 4, Label: "four", Secret: "s", hidden: "h", audit: &audit{CreatedBy: "ops"}}

	tests := []struct {
		name      string
		dataIndex string
		want      any
		found     bool
	}{
		{name: "exact field name", dataIndex: "ID", want: 4, found: true},
		{name: "case-insensitive name", dataIndex: "id", want: 4, found: true},
		{name: "tag", dataIndex: "title", want: "four", found: true},
		{name: "field name alongside tag", dataIndex: "Label", want: "four", found: true},
		{name: "tag hides field", dataIndex: "Secret", found: false},
		{name: "unexported field", dataIndex: "hidden", found: false},
		{name: "promoted field", dataIndex: "createdBy", want: "ops", found: true},
		{name: "missing field", dataIndex: "nope", found: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, ok := acc(row, testCase.dataIndex)
			require.Equal(t, testCase.found, ok)
			if testCase.found {
				require.Equal(t, testCase.want, got)
			}
		})
	}
}

func TestFieldAccessorNilEmbeddedPointer(t *testing.T) {
	t.Parallel()

	_, ok := logic.FieldAccessor[record]()(record{ID: 1}, "CreatedBy")
	require.False(t, ok)
}

func TestFieldAccessorPointersAndMaps(t *testing.T) {
	t.Parallel()

	v, ok := logic.FieldAccessor[*record]()(&record{ID: 9}, "id")
	require.True(t, ok)
	require.Equal(t, 9, v)

	_, ok = logic.FieldAccessor[*record]()(nil, "id")
	require.False(t, ok)

	v, ok = logic.FieldAccessor[map[string]any]()(map[string]any{"name": "x"}, "name")
	require.True(t, ok)
	require.Equal(t, "x", v)

	_, ok = logic.FieldAccessor[map[int]string]()(map[int]string{1: "x"}, "1")
	require.False(t, ok, "only string-keyed maps are addressable by name")
}

func TestMapAccessor(t *testing.T) {
	t.Parallel()

	row := map[string]any{"name": "x", "empty": nil}

	v, ok := logic.MapAccessor(row, "name")
	require.True(t, ok)
	require.Equal(t, "x", v)

	v, ok = logic.MapAccessor(row, "empty")
	require.True(t, ok)
	require.Nil(t, v)

	_, ok = logic.MapAccessor(row, "missing")
	require.False(t, ok)
}

func TestFieldKey(t *testing.T) {
	t.Parallel()

	key := logic.FieldKey(logic.MapAccessor, "id")

	require.Equal(t, "7", key(map[string]any{"id": int64(7)}))
	require.Equal(t, logic.StructuralKey(map[string]any{"name": "x"}), key(map[string]any{"name": "x"}))
}
