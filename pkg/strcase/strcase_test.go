package strcase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSnake(t *testing.T) {
	subtests := []struct {
		input  string
		output string
	}{
		{"", ""},
		{"AnyKind of_string", "any_kind_of_string"},
		{" Test Case ", "test_case"},
		{"testCase", "test_case"},
		{"test_case", "test_case"},
		{"TestCase", "test_case"},
		{"Test", "test"},
		{"ID", "id"},
		{"BaseObject", "base_object"},
		{"ManyManyWords", "many_many_words"},
		{"userID", "user_id"},
		{"widget2", "widget_2"},
		{"widget.v2", "widget_v_2"},
		{"v2beta", "v_2_beta"},
	}

	for _, st := range subtests {
		t.Run(st.input, func(t *testing.T) {
			require.Equal(t, st.output, Snake(st.input))
		})
	}
}

func TestScreamingSnake(t *testing.T) {
	subtests := []struct {
		input  string
		output string
	}{
		{"", ""},
		{"class", "CLASS"},
		{"objectId", "OBJECT_ID"},
		{"BaseObject", "BASE_OBJECT"},
		{"hash-code", "HASH_CODE"},
	}

	for _, st := range subtests {
		t.Run(st.input, func(t *testing.T) {
			require.Equal(t, st.output, ScreamingSnake(st.input))
		})
	}
}
