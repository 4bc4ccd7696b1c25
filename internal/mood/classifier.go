// Package mood maps raw team emotions to the target mood category that
// drives recommendation selection.
package mood

import (
	"sort"
	"strings"
)

// Target is the closed set of moods the recommendation catalog is keyed by
type Target string

const (
	TargetPositive  Target = "positive"
	TargetFocused   Target = "focused"
	TargetMotivated Target = "motivated"
	TargetRelaxed   Target = "relaxed"
	TargetEnergetic Target = "energetic"
)

// remap is the canonical emotion -> target mood table. Negative states route
// to a corrective target, never to a mirrored one: a stressed team gets
// calming focus music, a tired team gets energizing music.
var remap = map[string]Target{
	"excited":    TargetEnergetic,
	"happy":      TargetPositive,
	"calm":       TargetRelaxed,
	"focused":    TargetFocused,
	"motivated":  TargetMotivated,
	"stressed":   TargetFocused,
	"tired":      TargetEnergetic,
	"frustrated": TargetRelaxed,
	"energetic":  TargetEnergetic,
	"relaxed":    TargetRelaxed,
	"positive":   TargetPositive,
}

// Remap maps one raw emotion label to its target mood. Unknown labels
// default to the positive target.
func Remap(emotion string) Target {
	if target, ok := remap[strings.ToLower(strings.TrimSpace(emotion))]; ok {
		return target
	}
	return TargetPositive
}

// Classify picks the dominant raw label from a team emotion list and remaps
// it. Ties go to the label encountered first; that tie-break is a deliberate,
// simple contract, not an accident to be fixed. Empty input yields the
// positive target.
func Classify(emotions []string) Target {
	if len(emotions) == 0 {
		return TargetPositive
	}

	counts := make(map[string]int, len(emotions))
	var order []string

	for _, emotion := range emotions {
		label := strings.ToLower(strings.TrimSpace(emotion))
		if label == "" {
			continue
		}
		if counts[label] == 0 {
			order = append(order, label)
		}
		counts[label]++
	}

	if len(order) == 0 {
		return TargetPositive
	}

	dominant := order[0]
	for _, label := range order {
		if counts[label] > counts[dominant] {
			dominant = label
		}
	}

	return Remap(dominant)
}

// ClassifyDistribution remaps the most frequent label of a precomputed
// emotion distribution. Ties go to the lexically smallest label so repeated
// runs over the same distribution agree.
func ClassifyDistribution(distribution map[string]int) Target {
	labels := make([]string, 0, len(distribution))
	for label := range distribution {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	dominant := ""
	best := 0

	for _, label := range labels {
		if count := distribution[label]; count > best {
			dominant = label
			best = count
		}
	}

	if dominant == "" {
		return TargetPositive
	}

	return Remap(dominant)
}
