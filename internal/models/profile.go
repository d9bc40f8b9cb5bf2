package models

// Profile is the gender-conditional part of a user. Only FemaleProfile
// carries a pregnancy count.
type Profile interface {
	isProfile()
}

// MaleProfile is the variant for male users.
type MaleProfile struct{}

// FemaleProfile is the variant for female users.
type FemaleProfile struct {
	Pregnancies int
}

// OtherProfile is the variant for users who are neither male nor female.
type OtherProfile struct{}

func (MaleProfile) isProfile()   {}
func (FemaleProfile) isProfile() {}
func (OtherProfile) isProfile()  {}

// ProfileFor maps a stored gender to its variant. Unknown values fall back to OtherProfile.
func ProfileFor(gender string) Profile {
	switch gender {
	case GenderMale:
		return MaleProfile{}
	case GenderFemale:
		return FemaleProfile{}
	default:
		return OtherProfile{}
	}
}

// IsValidGender reports whether gender is one of the supported values.
func IsValidGender(gender string) bool {
	switch gender {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// PregnanciesOf returns the pregnancy count to persist for p, and false when
// the variant must not write one.
func PregnanciesOf(p Profile) (int, bool) {
	switch v := p.(type) {
	case FemaleProfile:
		return v.Pregnancies, true
	default:
		return 0, false
	}
}
