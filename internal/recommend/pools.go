package recommend

import (
	"time"

	"github.com/selivandex/team-pulse/internal/mood"
)

// DaySlot buckets the generation instant into the three message pools
type DaySlot string

const (
	SlotMorning DaySlot = "morning"
	SlotMidday  DaySlot = "midday"
	SlotEvening DaySlot = "evening"
)

// SlotFor buckets an instant: morning before 12:00, midday 12:00-17:00,
// evening from 17:00. Uses the UTC hour of the generation instant.
func SlotFor(t time.Time) DaySlot {
	hour := t.UTC().Hour()
	switch {
	case hour < 12:
		return SlotMorning
	case hour < 17:
		return SlotMidday
	default:
		return SlotEvening
	}
}

// wellnessPool holds the fixed wellness nudges per mood and time of day.
// These double as fallbacks when the live content generator fails.
var wellnessPool = map[mood.Target]map[DaySlot][]string{
	mood.TargetPositive: {
		SlotMorning: {
			"The team is starting the day on a high note. A quick round of shout-outs at standup keeps that energy going.",
			"Positive momentum this morning! Consider a short walk before diving into deep work to hold on to it.",
		},
		SlotMidday: {
			"Great energy across the team today. A shared lunch break is a good way to keep the connection strong.",
			"Things are going well. A five-minute stretch between meetings keeps the afternoon as good as the morning.",
		},
		SlotEvening: {
			"Strong day for the team. Close it out by writing down one thing that went well before logging off.",
			"The team ends the day in good spirits. Encourage everyone to actually disconnect tonight.",
		},
	},
	mood.TargetFocused: {
		SlotMorning: {
			"Mornings are prime focus time. Block the next two hours for uninterrupted work and silence notifications.",
			"The team benefits from calm starts. Suggest a no-meeting window before noon.",
		},
		SlotMidday: {
			"Midday pressure showing. A fifteen-minute breathing or meditation break resets the afternoon.",
			"Focus is dipping after lunch. Short, single-topic work blocks help the team regain it.",
		},
		SlotEvening: {
			"Long day of concentration. Wind down with something low-stimulation and leave the backlog for tomorrow.",
			"Evening is for recovery. Remind the team that unfinished work keeps better than burned-out people.",
		},
	},
	mood.TargetMotivated: {
		SlotMorning: {
			"Drive is high this morning. Channel it: pick the hardest task first while the energy lasts.",
			"The team is ready to push. Set one clear, shared goal for the day at standup.",
		},
		SlotMidday: {
			"Motivation holding strong. A quick progress check-in keeps everyone pulling in the same direction.",
			"Keep the momentum with small wins: break the afternoon into tasks that can actually be finished today.",
		},
		SlotEvening: {
			"Big effort today. Celebrate the progress explicitly before the team signs off.",
			"Sustained drive needs rest to last. Encourage a real break this evening.",
		},
	},
	mood.TargetRelaxed: {
		SlotMorning: {
			"Ease into the day: a calm review of priorities beats jumping straight into the inbox.",
			"A relaxed start is a good start. Keep the first hour meeting-free if possible.",
		},
		SlotMidday: {
			"Tension has been building. A short walk outside or a quiet break does more than another coffee.",
			"Midday is a good moment to slow down: suggest the team take lunch away from their screens.",
		},
		SlotEvening: {
			"The team has earned a quiet evening. Gentle music and an early finish help frustration dissolve.",
			"End the day softly: no new threads after this hour, tomorrow is soon enough.",
		},
	},
	mood.TargetEnergetic: {
		SlotMorning: {
			"Energy looks low this morning. Upbeat music and natural light help more than a third coffee.",
			"Slow start today. A two-minute team energizer at standup can shift the whole morning.",
		},
		SlotMidday: {
			"The afternoon dip is real. A brisk walk or a few minutes of movement beats pushing through tired.",
			"Fatigue showing midday. Suggest rotating demanding tasks so nobody grinds alone.",
		},
		SlotEvening: {
			"The team is running on fumes. Tonight, rest is the productive choice.",
			"Low energy this late is a signal, not a failure. Wrap up and recharge for tomorrow.",
		},
	},
}

// motivationalPool holds the fixed motivational messages per mood
var motivationalPool = map[mood.Target][]string{
	mood.TargetPositive: {
		"Today's collaboration is inspiring. Keep building on this foundation of trust and open communication.",
		"Teams that celebrate small wins build big ones. You're proving it.",
	},
	mood.TargetFocused: {
		"Deep work is a team sport: protect each other's focus and the results will follow.",
		"Calm, steady progress beats frantic effort every time. Stay the course.",
	},
	mood.TargetMotivated: {
		"Every challenge this week is an opportunity to grow stronger as a team.",
		"Ambition plus teamwork is unstoppable. Point it at one goal and go.",
	},
	mood.TargetRelaxed: {
		"Pressure is temporary; how the team treats each other under it is what lasts.",
		"Slowing down to think is not falling behind. Good decisions need room to breathe.",
	},
	mood.TargetEnergetic: {
		"Energy follows action: one small finished task can restart the whole engine.",
		"Tired teams that look out for each other come back stronger. Cover for each other today.",
	},
}

// wellnessFallback returns the pool for a target mood and slot, defaulting
// to the positive pool for unknown targets
func wellnessFallback(target mood.Target, slot DaySlot) []string {
	pools, ok := wellnessPool[target]
	if !ok {
		pools = wellnessPool[mood.TargetPositive]
	}
	return pools[slot]
}

func motivationalFallback(target mood.Target) []string {
	if pool, ok := motivationalPool[target]; ok {
		return pool
	}
	return motivationalPool[mood.TargetPositive]
}
