package resources

import (
	"strings"
)

// genericWords carry no subject matter on their own. They are ignored
// when matching a topic against a title unless the topic has nothing else.
var genericWords = map[string]bool{
	"fundamentals": true, "practice": true, "projects": true, "project": true,
	"basics": true, "introduction": true, "concepts": true, "advanced": true,
	"capstone": true,
}

// relevance decides whether a candidate resource is on-topic.
type relevance struct {
	topicTokens []string
	rule        *RelevanceRule
}

func newRelevance(topic string, rules []RelevanceRule) relevance {
	rel := relevance{topicTokens: topicTokens(topic)}
	lower := strings.ToLower(topic)
	for i := range rules {
		if strings.Contains(lower, rules[i].Key) {
			rel.rule = &rules[i]
			break
		}
	}
	return rel
}

// topicTokens returns the subject words of a topic name.
func topicTokens(topic string) []string {
	all := tokens(topic)
	var specific []string
	for _, t := range all {
		if !genericWords[t] {
			specific = append(specific, t)
		}
	}
	if len(specific) == 0 {
		return all
	}
	return specific
}

func resourceText(r Resource) string {
	return r.Title + " " + r.Description + " " + strings.Join(r.Tags, " ")
}

// rejected reports whether r hits a negative keyword of the topic's rule.
func (rel relevance) rejected(r Resource) bool {
	if rel.rule == nil {
		return false
	}
	text := strings.ToLower(resourceText(r))
	for _, neg := range rel.rule.Negative {
		if strings.Contains(text, neg) {
			return true
		}
	}
	return false
}

// Relevant reports whether r is on-topic: no negative keyword and either
// a topic word or a positive keyword present.
func (rel relevance) Relevant(r Resource) bool {
	if rel.rejected(r) {
		return false
	}
	text := resourceText(r)
	for _, t := range rel.topicTokens {
		if containsWord(text, t) {
			return true
		}
	}
	if rel.rule != nil {
		for _, pos := range rel.rule.Positive {
			if containsWord(text, pos) {
				return true
			}
		}
	}
	return false
}

// affinityWords collects the learner-context words used to prefer some
// relevant resources over others.
func affinityWords(role string, skills []string) []string {
	words := tokens(role)
	for _, s := range skills {
		words = append(words, tokens(strings.ReplaceAll(s, "_", " "))...)
	}
	return uniq(words)
}

func matchesAny(r Resource, words []string) bool {
	text := resourceText(r)
	for _, w := range words {
		if containsWord(text, w) {
			return true
		}
	}
	return false
}

// selectResources picks up to limit resources from ranked. Relevant
// resources that match the learner context come first, then the other
// relevant ones, then anything else ranked, never including
// negative-keyword hits.
func selectResources(ranked []Resource, rel relevance, affinity []string, limit int) []Resource {
	var preferred, rest, backfill []Resource
	for _, r := range ranked {
		switch {
		case rel.rejected(r):
		case !rel.Relevant(r):
			backfill = append(backfill, r)
		case len(affinity) == 0 || matchesAny(r, affinity):
			preferred = append(preferred, r)
		default:
			rest = append(rest, r)
		}
	}

	out := make([]Resource, 0, limit)
	for _, group := range [][]Resource{preferred, rest, backfill} {
		for _, r := range group {
			if len(out) == limit {
				return out
			}
			out = append(out, r)
		}
	}
	return out
}
