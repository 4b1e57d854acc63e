// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search builds drug information prompts and owns the single
// provider call per search, normalizing its outcome into a uniform
// result envelope.
package search

import (
	"strings"
	"text/template"

	"github.com/pdiddy/pharmacy-genius/pkg/types"
)

// promptPreambleTmpl renders the unconditional opening of every search
// prompt: basic, medical, and regulatory information for the named drug,
// restricted to authoritative sources.
var promptPreambleTmpl = template.Must(template.New("preamble").Parse(`Search for comprehensive information about the drug "{{.DrugName}}" and provide detailed, accurate information from authoritative medical sources.

Please provide the following information in a structured format:

1. **Basic Information:**
   - Official drug name
   - Generic name (if applicable)
   - Common brand names
   - Drug classification/category

2. **Medical Information:**
   - Primary indications (what conditions it treats)
   - Mechanism of action (how it works)
   - Therapeutic category

3. **Regulatory Information:**
   - FDA approval status
   - Available formulations (tablets, injection, etc.)
   - Prescription vs OTC status`))

const dosageSection = `4. **Dosage Information:**
   - Typical adult dosage
   - Pediatric dosage (if applicable)
   - Administration route
   - Frequency of administration`

const safetySection = `5. **Safety Information:**
   - Common side effects
   - Serious/rare side effects
   - Contraindications
   - Important warnings and precautions`

const interactionsSection = `6. **Drug Interactions:**
   - Major drug interactions
   - Food interactions
   - Alcohol interactions`

// promptClosing is appended to every prompt regardless of flags.
const promptClosing = `**Important Instructions:**
- Only use information from authoritative medical sources (FDA, EMA, PubMed, medical textbooks, official drug labels)
- Ensure all information is current and accurate
- If certain information is not available or unclear, state that explicitly
- Include the sources where you found this information
- Format the response in clear, structured sections
- Use medical terminology appropriately but explain complex terms

Please search the web for the most current and accurate information about this drug.`

// promptSection is one optional prompt block: a fixed template guarded by a
// predicate over the request flags. Sections are rendered in the order they
// are declared, never reordered.
type promptSection struct {
	name    string
	include func(types.SearchRequest) bool
	text    string
}

// promptSections lists the optional sections in their fixed order:
// dosage, then safety, then interactions.
var promptSections = []promptSection{
	{
		name:    "dosage",
		include: func(r types.SearchRequest) bool { return r.IncludeDosage },
		text:    dosageSection,
	},
	{
		name:    "safety",
		include: func(r types.SearchRequest) bool { return r.IncludeSideEffects },
		text:    safetySection,
	},
	{
		name:    "interactions",
		include: func(r types.SearchRequest) bool { return r.IncludeInteractions },
		text:    interactionsSection,
	},
}

// BuildPrompt renders the search instruction for the provider: the preamble,
// the optional sections selected by the request flags, and the closing
// instructions block. It is pure and total over its inputs.
func BuildPrompt(req types.SearchRequest) string {
	var b strings.Builder
	// Writes to a strings.Builder cannot fail.
	_ = promptPreambleTmpl.Execute(&b, struct{ DrugName string }{DrugName: req.DrugName})

	for _, s := range promptSections {
		if !s.include(req) {
			continue
		}
		b.WriteString("\n\n")
		b.WriteString(s.text)
	}

	b.WriteString("\n\n")
	b.WriteString(promptClosing)
	return b.String()
}

// previewLength is the number of prompt characters echoed back in a
// successful result. The exact length is a compatibility contract with the
// original service, not a stylistic choice.
const previewLength = 200

// Preview returns the first 200 characters of the prompt followed by an
// ellipsis marker. The cut counts characters rather than bytes so a
// multibyte drug name is never split mid-rune.
func Preview(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > previewLength {
		runes = runes[:previewLength]
	}
	return string(runes) + "..."
}
