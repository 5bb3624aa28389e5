package metrics

import "testing"

func TestRoundFloat64(t *testing.T) {
	cases := []struct {
		in   RoundFloat64
		want string
	}{
		{RoundFloat64{Value: 51.08314257587679, Precision: 2}, "51.08"},
		{RoundFloat64{Value: 1006.5532957454265, Precision: 4}, "1006.5533"},
		{RoundFloat64{Value: -3.14159, Precision: 3}, "-3.142"},
		{RoundFloat64{Value: 25, Precision: 0}, "25"},
	}

	for _, tc := range cases {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%+v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}
