package sleep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay_AcceptedForms(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"10 pm", TimeOfDay{Hour: 22}},
		{"10pm", TimeOfDay{Hour: 22}},
		{"6 am", TimeOfDay{Hour: 6}},
		{"12 am", TimeOfDay{Hour: 0}},
		{"12 pm", TimeOfDay{Hour: 12}},
		{"22", TimeOfDay{Hour: 22}},
		{"0", TimeOfDay{Hour: 0}},
		{"22:30", TimeOfDay{Hour: 22, Minute: 30}},
		{"06:05", TimeOfDay{Hour: 6, Minute: 5}},
		{"  7 PM ", TimeOfDay{Hour: 19}},
		{"1:45 am", TimeOfDay{Hour: 1, Minute: 45}},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTimeOfDay_Rejected(t *testing.T) {
	for _, in := range []string{"", "25", "24", "-1", "13 pm", "0 am", "22:60", "ten", "22:"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeOfDay(in)
			require.Error(t, err)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestTimeOfDayString(t *testing.T) {
	assert.Equal(t, "23:00", TimeOfDay{Hour: 23}.String())
	assert.Equal(t, "06:30", TimeOfDay{Hour: 6, Minute: 30}.String())
}
