package units

import "testing"

func TestDimensionAlgebra(t *testing.T) {
	tests := []struct {
		name string
		got  Dimension
		want Dimension
	}{
		{
			name: "volume density is mass over volume",
			got:  Mass.Over(Volume),
			want: VolumeDensity,
		},
		{
			name: "elimination rate times time restores volume density",
			got:  VolumeDensity.Over(Time).Times(Time),
			want: VolumeDensity,
		},
		{
			name: "serum concentration aliases volume density",
			got:  SerumConcentration,
			want: VolumeDensity,
		},
		{
			name: "volume of distribution inverts mass per volume composition",
			got:  Volume.Over(Mass).Times(Mass),
			want: Volume,
		},
		{
			name: "dividing equal dimensions is dimensionless",
			got:  Mass.Over(Mass),
			want: Dimensionless,
		},
		{
			name: "times is commutative",
			got:  Mass.Times(Time),
			want: Time.Times(Mass),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDimensionString(t *testing.T) {
	tests := []struct {
		name string
		dim  Dimension
		want string
	}{
		{"dimensionless", Dimensionless, "dimensionless"},
		{"mass", Mass, "mass"},
		{"volume density", VolumeDensity, "mass·volume^-1"},
		{"elimination rate", EliminationRate, "mass·volume^-1·time^-1"},
		{"volume of distribution", VolumeOfDistribution, "mass^-1·volume"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dim.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDimensionErrorMessage(t *testing.T) {
	err := &DimensionError{Op: "addition", Left: Mass, Right: Volume}
	want := "units: addition of mass and volume: dimension mismatch"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
