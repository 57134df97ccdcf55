package baseline

import "github.com/patrickrbarry/lifetracker/pkg/types"

// builtinActivity declares one built-in activity. Built-in ids predate the
// slug rule and are fixed by the stored data of existing installs, so they
// are spelled out instead of derived from the name.
func builtinActivity(id, name string, kind types.InputKind, params types.Params) types.Activity {
	a, err := types.NewActivity(name, kind, params)
	if err != nil {
		// The built-in set is static; a bad entry is a programming error.
		panic("baseline: invalid built-in activity " + name + ": " + err.Error())
	}
	a.ID = id
	return a
}

// sets03 bounds a gym counter to 0..3 sets.
var sets03 = types.Params{Min: 0, Max: 3}

// Current returns the built-in baseline for this release.
//
// The "supplements" category shipped briefly and was folded into "intake";
// it is deprecated here so existing installs drop it. "social" arrived
// after the first release, so installs that predate it gain it on load.
func Current() Baseline {
	return Baseline{
		Categories: []types.Category{
			{
				ID:      "gym",
				Name:    "Gym",
				IconRef: "gym",
				Activities: []types.Activity{
					builtinActivity("pushups", "Pushups", types.KindBoundedCounter, sets03),
					builtinActivity("pullups", "Pull-ups", types.KindBoundedCounter, sets03),
					builtinActivity("planks", "Planks/Crunches", types.KindBoundedCounter, sets03),
					builtinActivity("bench", "Bench", types.KindBoundedCounter, sets03),
				},
			},
			{
				ID:      "walks",
				Name:    "Walks",
				IconRef: "walks",
				Activities: []types.Activity{
					builtinActivity("walks", "Walk Type", types.KindSingleChoice, types.Params{
						Options: []string{"neighborhood", "dish", "adventure"},
					}),
				},
			},
			{
				ID:      "intake",
				Name:    "Intake",
				IconRef: "intake",
				Activities: []types.Activity{
					builtinActivity("meds", "Meds", types.KindBoolean, types.Params{}),
					builtinActivity("electrolytes", "Electrolytes", types.KindBoolean, types.Params{}),
					builtinActivity("alcohol", "Alcohol >1", types.KindBoolean, types.Params{}),
				},
			},
			{
				ID:      "games",
				Name:    "Games",
				IconRef: "games",
				Activities: []types.Activity{
					builtinActivity("bird", "Bird", types.KindBoolean, types.Params{}),
					builtinActivity("golf", "Golf", types.KindBoolean, types.Params{}),
					builtinActivity("civ", "Civ", types.KindBoolean, types.Params{}),
					builtinActivity("other", "Other", types.KindBoolean, types.Params{}),
				},
			},
			{
				ID:      "reading",
				Name:    "Reading",
				IconRef: "reading",
				Activities: []types.Activity{
					builtinActivity("audio", "Audio", types.KindBoolean, types.Params{}),
					builtinActivity("physical", "Physical", types.KindBoolean, types.Params{}),
					builtinActivity("digital", "Digital", types.KindBoolean, types.Params{}),
					builtinActivity("content", "Content", types.KindExtensibleChoice, types.Params{
						Options:  []string{"Book: Example Title", "Article: Sample Article"},
						AllowNew: true,
					}),
				},
			},
			{
				ID:      "social",
				Name:    "Social",
				IconRef: "social",
				Activities: []types.Activity{
					builtinActivity("friends", "Friends", types.KindBoolean, types.Params{}),
					builtinActivity("family", "Family", types.KindBoolean, types.Params{}),
					builtinActivity("work", "Work", types.KindBoolean, types.Params{}),
				},
			},
		},
		Introduced: []string{"social"},
		Removed: []Removal{
			{ID: "supplements", Name: "Supplements"},
		},
	}
}
