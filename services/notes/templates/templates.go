// Package templates holds the fixed prompt templates and picks one by style.
package templates

import (
	"fmt"

	"github.com/xilidan/notes/services/notes/consts"
)

// Template is an instruction prompt with a single %s verb where the source
// text goes.
type Template struct {
	Style  string
	Prompt string
}

// Assemble interpolates text into the template. Text is forwarded as-is.
func (t Template) Assemble(text string) string {
	return fmt.Sprintf(t.Prompt, text)
}

var styleOrder = []string{
	consts.StyleGeneric,
	consts.StyleMeeting,
	consts.StyleLecture,
	consts.StyleInterview,
	consts.StyleBrainstorm,
}

var templates = map[string]string{
	consts.StyleGeneric:    genericPrompt,
	consts.StyleMeeting:    meetingPrompt,
	consts.StyleLecture:    lecturePrompt,
	consts.StyleInterview:  interviewPrompt,
	consts.StyleBrainstorm: brainstormPrompt,
}

// Select returns the template for style, or the generic template when style
// is not one of Styles().
func Select(style string) Template {
	key := Normalize(style)
	return Template{Style: key, Prompt: templates[key]}
}

// Normalize resolves style to a known key.
func Normalize(style string) string {
	if _, ok := templates[style]; ok {
		return style
	}
	return consts.DefaultStyle
}

func Styles() []string {
	result := make([]string, len(styleOrder))
	copy(result, styleOrder)
	return result
}

const genericPrompt = `Convert the following text into clean structured notes.
Keep all important details, but remove fluff.

Format the notes in Markdown using exactly these sections:
## Summary
## Key Points
## Action Items

Text:
%s
`

const meetingPrompt = `You turn a meeting transcript into structured meeting minutes.
Keep every decision, owner and deadline. Drop small talk.

Format the notes in Markdown using exactly these sections:
## Summary
## Decisions
## Action Items
## Open Questions

Transcript:
%s
`

const lecturePrompt = `You turn a lecture transcript into study notes.
Keep definitions, examples and formulas. Drop repetition and filler words.

Format the notes in Markdown using exactly these sections:
## Overview
## Key Concepts
## Examples
## Review Questions

Transcript:
%s
`

const interviewPrompt = `You turn an interview transcript into structured notes.
Attribute answers to the speaker who gave them. Keep notable quotes verbatim.

Format the notes in Markdown using exactly these sections:
## Summary
## Questions and Answers
## Notable Quotes

Transcript:
%s
`

const brainstormPrompt = `You turn a brainstorming session into organized notes.
Group related ideas under one theme. One idea per bullet.

Format the notes in Markdown using exactly these sections:
## Themes
## Key Ideas
## Next Steps

Transcript:
%s
`
