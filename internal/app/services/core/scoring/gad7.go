package scoring

const GAD7Code = "gad7"

// GAD7 returns a fresh copy of the seven-item Generalized Anxiety Disorder
// screener with the standard 0-4, 5-9, 10-14 and 15-21 cut-offs.
func GAD7() *Instrument {
	return &Instrument{
		Code:   GAD7Code,
		Title:  "GAD-7 Anxiety Assessment",
		Prompt: "Over the last 2 weeks, how often have you been bothered by the following problems?",
		Questions: []Question{
			{Text: "Feeling nervous, anxious, or on edge"},
			{Text: "Not being able to stop or control worrying"},
			{Text: "Worrying too much about different things"},
			{Text: "Trouble relaxing"},
			{Text: "Being so restless that it is hard to sit still"},
			{Text: "Becoming easily annoyed or irritable"},
			{Text: "Feeling afraid, as if something awful might happen"},
		},
		Options: []Option{
			{Value: 0, Label: "Not at all"},
			{Value: 1, Label: "Several days"},
			{Value: 2, Label: "More than half the days"},
			{Value: 3, Label: "Nearly every day"},
		},
		MinAnswer: 0,
		MaxAnswer: 3,
		Bands: []Band{
			{
				Category: CategoryMinimal,
				Label:    "Minimal",
				Min:      0,
				Max:      4,
				Message:  "Your anxiety level is minimal. Keep monitoring your emotions and practice self-care techniques regularly.",
				Style:    "result-mild",
			},
			{
				Category: CategoryMild,
				Label:    "Mild",
				Min:      5,
				Max:      9,
				Message:  "You show symptoms of mild anxiety. We recommend adding relaxation and mindfulness techniques to your daily routine.",
				Style:    "result-mild",
			},
			{
				Category: CategoryModerate,
				Label:    "Moderate",
				Min:      10,
				Max:      14,
				Message:  "You show symptoms of moderate anxiety. Consider consulting a mental health professional for additional guidance.",
				Style:    "result-moderate",
			},
			{
				Category: CategorySevere,
				Label:    "Severe",
				Min:      15,
				Max:      21,
				Message:  "You show symptoms of severe anxiety. We recommend seeking professional help as soon as possible to receive the right support.",
				Style:    "result-severe",
			},
		},
	}
}
