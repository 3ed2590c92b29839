// Package taxonomy holds the static classification and targeting vocabularies
// shared by all catalog entities. The console renders these as dropdowns; they
// ship with the binary rather than being loaded from the backend.
package taxonomy

type FocusArea string

const (
	FocusMind            FocusArea = "Mind"
	FocusBody            FocusArea = "Body"
	FocusNutrition       FocusArea = "Nutrition"
	FocusSleep           FocusArea = "Sleep"
	FocusGeneralWellness FocusArea = "General Wellness"
)

var FocusAreas = []FocusArea{FocusMind, FocusBody, FocusNutrition, FocusSleep, FocusGeneralWellness}

// SubFocusAreas lists the free-text suggestions offered per focus area.
// The sub-focus-area itself is not constrained to this list.
var SubFocusAreas = map[FocusArea][]string{
	FocusMind:            {"Stress Management", "Sleep", "Meditation", "Mindfulness"},
	FocusBody:            {"Spine Health", "General Fitness", "Cardio Fitness", "Pain Management", "Flexibility"},
	FocusNutrition:       {"General Nutrition", "Diet Planning", "Weight Management"},
	FocusSleep:           {"Sleep Quality", "Insomnia", "Sleep Hygiene"},
	FocusGeneralWellness: {"Holistic Health", "Lifestyle", "Preventive Care"},
}

func ValidFocusArea(f FocusArea) bool {
	for _, known := range FocusAreas {
		if f == known {
			return true
		}
	}
	return false
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderAny    Gender = "Any"
)

type AgeGroup string

const (
	AgeChild   AgeGroup = "Child"
	AgeYouth   AgeGroup = "Youth"
	AgeAdult   AgeGroup = "Adult"
	AgeElderly AgeGroup = "Elderly"
)
