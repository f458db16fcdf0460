package screening

import (
	"errors"
	"strings"
)

// ErrNoJobDescription is returned before any processing when the batch
// has no job description to score against.
var ErrNoJobDescription = errors.New("job description is required")

// ErrNoInputFiles is returned before any processing when the batch has
// nothing to screen.
var ErrNoInputFiles = errors.New("no resume files to screen")

// BuildJobContext derives a JobContext from the raw job description and
// the user-supplied inputs. Required skills and the experience
// requirement come from the description; nice-to-have lists are merged
// case-insensitively.
func BuildJobContext(title, description string, niceToHave ...[]string) (*JobContext, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrNoJobDescription
	}

	return &JobContext{
		Title:         strings.TrimSpace(title),
		Description:   description,
		RequiredSkill: DeriveRequiredSkills(description),
		NiceToHave:    MergeSkillLists(niceToHave...),
		RequiredYears: ExtractRequiredYears(description),
	}, nil
}
