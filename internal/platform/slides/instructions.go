package slides

import (
	"fmt"
	"strings"
)

// instructionSeparator divides the generated instruction block from the
// trainer's original content.
const instructionSeparator = "---"

// rulesHeader opens the instruction block. Exposed as a constant so tests
// can assert on ordering without duplicating prose.
const rulesHeader = "CRITICAL LANGUAGE AND SLIDE REQUIREMENTS:"

// directionWord returns the directionality keyword for the profile.
func directionWord(p Profile) string {
	if p.RTL {
		return "RIGHT-TO-LEFT"
	}
	return "LEFT-TO-RIGHT"
}

// buildInstructions renders the six-rule instruction block for the enforced
// slide count and language profile. The slide constraint is stated twice
// ("exactly N" and "no more than N") so the downstream service receives an
// unambiguous, redundant limit.
func buildInstructions(enforced int, p Profile) string {
	direction := directionWord(p)

	var b strings.Builder
	b.WriteString(rulesHeader)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Create a presentation with exactly %d slides and no more than %d slides.\n", enforced, enforced)
	fmt.Fprintf(&b, "1. DO NOT translate the content. Keep all source material in its original language (%q).\n", p.Code)
	fmt.Fprintf(&b, "2. ALL generated text (titles, bullet points, labels, speaker notes) must be written in %q.\n", p.Code)
	fmt.Fprintf(&b, "3. Lay out every slide %s, matching the script direction of %q.\n", direction, p.Code)
	fmt.Fprintf(&b, "4. Treat all structural elements (lists, tables, headings, numbering) uniformly as %s.\n", direction)
	fmt.Fprintf(&b, "5. Do not mix words from other languages into the content, except programming syntax and code identifiers.\n")
	fmt.Fprintf(&b, "6. Keep a professional, instructional tone suitable for training material.\n")

	return b.String()
}

// composePrompt concatenates the instruction block, the separator, and the
// trainer's original content. The content is passed through byte-for-byte;
// rules always precede the separator, which always precedes the content.
func composePrompt(instructions, content string) string {
	return instructions + "\n" + instructionSeparator + "\n" + content
}
