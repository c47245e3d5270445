package prompt

import (
	"fmt"
	"strings"
)

// DefaultRequirements is substituted when the user leaves the requirements
// field empty.
const DefaultRequirements = "No extra requirements."

// metaPromptTemplate is the fixed skeleton every provider receives. The
// models key off its structure, so section ordering and literal markup must
// stay exactly as they are. The two substitution slots are the project idea
// and the requirements, in that order.
const metaPromptTemplate = `
You are an Expert AI Prompt Engineer specializing in generating highly effective prompts for coding and development tasks.

Your task is to create a detailed, structured prompt that I can use with any AI model to solve the following problem:

**PROJECT IDEA:**
%s

**REQUIREMENTS:**
%s

Please follow this exact structure for the output prompt:

---
**Role:** [Describe the expert role, e.g., "Senior Full-Stack Developer with 10+ years of experience in React and Node.js"]
**Context:** [Briefly explain the project, tech stack, and constraints]
**Task Instructions:** 
1. [Step 1]
2. [Step 2]
...
**Constraints:**
- Must include [specific requirement 1]
- Must avoid [specific restriction 1]
...
**Output Format:**
- Provide complete, runnable code blocks.
- Include error handling.
- Add comments explaining key sections.
- Do NOT use placeholders like "// ...".
---
`

// ValidationError reports unusable user input. It is returned before any
// provider client is built, so no network call is ever made for it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Request carries the user's task description. Build it with NewRequest so
// validation and the requirements fallback are applied the same way in
// single and comparison mode.
type Request struct {
	ProjectIdea  string
	Requirements string
}

// NewRequest validates the inputs and returns an immutable Request.
// The project idea is required; empty or blank requirements fall back to
// DefaultRequirements.
func NewRequest(projectIdea, requirements string) (Request, error) {
	if strings.TrimSpace(projectIdea) == "" {
		return Request{}, &ValidationError{
			Field:   "project_idea",
			Message: "please enter a project idea",
		}
	}
	if strings.TrimSpace(requirements) == "" {
		requirements = DefaultRequirements
	}

	return Request{
		ProjectIdea:  projectIdea,
		Requirements: requirements,
	}, nil
}

// Render substitutes the request fields into the meta-prompt template.
// Pure and deterministic.
func (r Request) Render() string {
	return fmt.Sprintf(metaPromptTemplate, r.ProjectIdea, r.Requirements)
}
