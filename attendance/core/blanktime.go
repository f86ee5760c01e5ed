package core

import "fmt"

const (
	blankTimeStep = 15
	blankTimeMax  = 7*60 + 45
)

// Choice is one selectable value of a form drop-down.
type Choice struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// FormatBlankTime renders a break duration as "Hh Mm". A nil duration has no display value.
func FormatBlankTime(minutes *int32) (string, bool) {
	if minutes == nil {
		return "", false
	}
	m := int(*minutes)
	return fmt.Sprintf("%dh %dm", m/60, m%60), true
}

// BlankTimeChoices lists the break durations a student can pick, in 15 minute steps.
func BlankTimeChoices() []Choice {
	choices := make([]Choice, 0, blankTimeMax/blankTimeStep)
	for m := blankTimeStep; m <= blankTimeMax; m += blankTimeStep {
		v := int32(m)
		label, _ := FormatBlankTime(&v)
		choices = append(choices, Choice{Value: m, Label: label})
	}
	return choices
}

func HourChoices() []Choice {
	return numberChoices(24)
}

func MinuteChoices() []Choice {
	return numberChoices(60)
}

func numberChoices(n int) []Choice {
	choices := make([]Choice, n)
	for i := range choices {
		choices[i] = Choice{Value: i, Label: fmt.Sprintf("%02d", i)}
	}
	return choices
}
