// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"regexp"

	"github.com/MKhiriev/go-qr-keeper/models"
)

// Rule is the recognition rule for one ContentKind.
//
// Prefix is an unambiguous literal tag (WIFI:, mailto:, BEGIN:VCARD...).
// Heuristic is a looser pattern over the whole string (bare e-mail, bare phone
// number, host-like url). Either may be nil, but not both.
type Rule struct {
	Kind      models.ContentKind
	Prefix    *regexp.Regexp
	Heuristic *regexp.Regexp
}

// Match reports whether s satisfies either of the rule's predicates.
func (r Rule) Match(s string) bool {
	return r.matchPrefix(s) || r.matchHeuristic(s)
}

// Pattern returns the textual form of the rule, both predicates joined by "|".
func (r Rule) Pattern() string {
	switch {
	case r.Prefix != nil && r.Heuristic != nil:
		return r.Prefix.String() + "|" + r.Heuristic.String()
	case r.Prefix != nil:
		return r.Prefix.String()
	case r.Heuristic != nil:
		return r.Heuristic.String()
	}
	return ""
}

func (r Rule) matchPrefix(s string) bool {
	return r.Prefix != nil && r.Prefix.MatchString(s)
}

func (r Rule) matchHeuristic(s string) bool {
	return r.Heuristic != nil && r.Heuristic.MatchString(s)
}

var (
	urlPattern        = regexp.MustCompile(`(?i)^(https?://)?([\w-]+\.)+\w{2,}(/.*)?$`)
	bareEmailPattern  = regexp.MustCompile(`(?i)^[\w.%+-]+@[\w.-]+\.[a-z]{2,}$`)
	barePhonePattern  = regexp.MustCompile(`^(\+\d{1,3})?[-. ]?\(?[\d\s]{3,}\)?[-. ]?[\d\s]{3,}$`)
	fallbackPattern   = regexp.MustCompile(`(?s)^.*$`)
	httpSchemePattern = regexp.MustCompile(`(?i)^https?://`)
)

// grammar lists the rules in priority order. Text is last and matches anything.
var grammar = []Rule{
	{Kind: models.KindWiFi, Prefix: regexp.MustCompile(`(?i)^WIFI:`)},
	{Kind: models.KindContact, Prefix: regexp.MustCompile(`(?i)^BEGIN:VCARD`)},
	{Kind: models.KindCalendar, Prefix: regexp.MustCompile(`(?i)^BEGIN:VEVENT`)},
	{Kind: models.KindEmail, Prefix: regexp.MustCompile(`(?i)^mailto:`), Heuristic: bareEmailPattern},
	{Kind: models.KindPhone, Prefix: regexp.MustCompile(`(?i)^tel:`), Heuristic: barePhonePattern},
	{Kind: models.KindSMS, Prefix: regexp.MustCompile(`(?i)^sms:`)},
	{Kind: models.KindGeo, Prefix: regexp.MustCompile(`(?i)^geo:`)},
	{Kind: models.KindURL, Heuristic: urlPattern},
	{Kind: models.KindText, Heuristic: fallbackPattern},
}

// heuristicOrder is the order the loose patterns are tried in once no prefix matched.
var heuristicOrder = []models.ContentKind{
	models.KindURL,
	models.KindEmail,
	models.KindPhone,
	models.KindText,
}

// Grammar returns a copy of the rule table in priority order.
func Grammar() []Rule {
	out := make([]Rule, len(grammar))
	copy(out, grammar)
	return out
}

// RuleFor returns the rule for kind.
func RuleFor(kind models.ContentKind) (Rule, bool) {
	for _, r := range grammar {
		if r.Kind == kind {
			return r, true
		}
	}
	return Rule{}, false
}

// TypeInfoFor re-derives the persisted typeInfo record for kind.
func TypeInfoFor(kind models.ContentKind) models.TypeInfo {
	r, ok := RuleFor(kind)
	if !ok {
		r, _ = RuleFor(models.KindText)
		kind = models.KindText
	}
	return models.TypeInfo{Type: kind, Pattern: r.Pattern()}
}
