package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPregnanciesOf(t *testing.T) {
	tests := []struct {
		gender    string
		wantCount int
		wantWrite bool
	}{
		{GenderFemale, 0, true},
		{GenderMale, 0, false},
		{GenderOther, 0, false},
		{"unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.gender, func(t *testing.T) {
			n, ok := PregnanciesOf(ProfileFor(tt.gender))
			assert.Equal(t, tt.wantCount, n)
			assert.Equal(t, tt.wantWrite, ok)
		})
	}

	n, ok := PregnanciesOf(FemaleProfile{Pregnancies: 2})
	assert.True(t, ok)
	assert.Equal(t, 2, n)
}

func TestIsValidGender(t *testing.T) {
	assert.True(t, IsValidGender("female"))
	assert.False(t, IsValidGender("Female"))
	assert.False(t, IsValidGender(""))
}
