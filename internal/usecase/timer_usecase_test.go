package usecase

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimerInput_UnmarshalJSON_TracksNulls(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		nulls []string
	}{
		{
			name: "omitted fields are not null",
			body: `{"title":"Sale"}`,
		},
		{
			name:  "explicit nulls",
			body:  `{"title":"Sale","duration":null,"beforeMessage": null ,"afterMessage":null}`,
			nulls: []string{FieldDuration, FieldBeforeMessage, FieldAfterMessage},
		},
		{
			name:  "set values are not null",
			body:  `{"duration":15,"beforeMessage":"","afterMessage":null}`,
			nulls: []string{FieldAfterMessage},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in TimerInput
			require.NoError(t, json.Unmarshal([]byte(tt.body), &in))

			for _, field := range clearableFields {
				assert.Equal(t, slices.Contains(tt.nulls, field), in.IsNull(field), field)
			}
		})
	}
}

func TestTimerInput_UnmarshalJSON_KeepsValues(t *testing.T) {
	var in TimerInput
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Sale","duration":15,"beforeMessage":"","productIds":["p1"]}`), &in))

	assert.Equal(t, "Sale", in.Title)
	require.NotNil(t, in.Duration)
	assert.Equal(t, 15, *in.Duration)
	require.NotNil(t, in.BeforeMessage)
	assert.Empty(t, *in.BeforeMessage)
	assert.Equal(t, []string{"p1"}, in.ProductIDs)
}

func TestTimerInput_UnmarshalJSON_TypeError(t *testing.T) {
	var in TimerInput
	err := json.Unmarshal([]byte(`{"duration":"soon"}`), &in)

	var typeErr *json.UnmarshalTypeError
	assert.ErrorAs(t, err, &typeErr)
}

func TestTimerInput_SetNull(t *testing.T) {
	var in TimerInput
	assert.False(t, in.IsNull(FieldDuration))

	in.SetNull(FieldDuration)
	assert.True(t, in.IsNull(FieldDuration))
}
