package poll

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

const (
	maxQuestionLength    = 500
	minOptions           = 2
	maxOptionTextLength  = 200
	maxDescriptionLength = 500
	maxImageLength       = 2048
	maxAllowedViewers    = 100
	maxFilterValues      = 20
)

// OptionInput is one answer of a new poll.
type OptionInput struct {
	Text        string
	Description *string
}

// PrivacyInput is the caller-supplied privacy descriptor.
type PrivacyInput struct {
	PollHidden     bool
	ResultsHidden  bool
	AllowedViewers []string
}

// CreatePollInput holds parameters for poll creation.
type CreatePollInput struct {
	Question string
	Options  []OptionInput
	Image    *string
	Privacy  *PrivacyInput
}

// normalize trims free text and canonicalizes viewer identities.
func (i *CreatePollInput) normalize() {
	i.Question = strings.TrimSpace(i.Question)
	i.Image = domain.TrimOrNil(i.Image)
	for k := range i.Options {
		i.Options[k].Text = strings.TrimSpace(i.Options[k].Text)
		i.Options[k].Description = domain.TrimOrNil(i.Options[k].Description)
	}
	if i.Privacy != nil {
		i.Privacy.AllowedViewers = normalizeViewers(i.Privacy.AllowedViewers)
	}
}

// Validate validates the create poll input. maxOptions is the configured
// upper bound on options.
func (i CreatePollInput) Validate(maxOptions int) error {
	var errs []domain.FieldError

	errs = appendQuestionErrors(errs, i.Question)

	switch {
	case len(i.Options) < minOptions:
		errs = append(errs, domain.FieldError{Field: "options", Message: "at least 2 options required"})
	case len(i.Options) > maxOptions:
		errs = append(errs, domain.FieldError{Field: "options", Message: fmt.Sprintf("at most %d options allowed", maxOptions)})
	}
	for k, o := range i.Options {
		field := fmt.Sprintf("options[%d]", k)
		if o.Text == "" {
			errs = append(errs, domain.FieldError{Field: field + ".text", Message: "required"})
		} else if len(o.Text) > maxOptionTextLength {
			errs = append(errs, domain.FieldError{Field: field + ".text", Message: "too long"})
		}
		if o.Description != nil && len(*o.Description) > maxDescriptionLength {
			errs = append(errs, domain.FieldError{Field: field + ".description", Message: "too long"})
		}
	}

	errs = appendImageErrors(errs, i.Image)
	errs = appendPrivacyErrors(errs, i.Privacy)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePollInput holds parameters for poll update. nil fields are kept.
// Options cannot be changed after creation.
type UpdatePollInput struct {
	ID       uuid.UUID
	Question *string
	Image    *string
	Privacy  *PrivacyInput
}

func (i *UpdatePollInput) normalize() {
	if i.Question != nil {
		q := strings.TrimSpace(*i.Question)
		i.Question = &q
	}
	i.Image = domain.TrimOrNil(i.Image)
	if i.Privacy != nil {
		i.Privacy.AllowedViewers = normalizeViewers(i.Privacy.AllowedViewers)
	}
}

// Validate validates the update poll input.
func (i UpdatePollInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Question != nil {
		errs = appendQuestionErrors(errs, *i.Question)
	}
	errs = appendImageErrors(errs, i.Image)
	errs = appendPrivacyErrors(errs, i.Privacy)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListPollsInput holds parameters for poll enumeration.
type ListPollsInput struct {
	Mode       domain.ListMode
	Categories []string
	Authors    []string
	Offset     int
	Limit      int
}

func (i *ListPollsInput) normalize() {
	if m, ok := domain.ParseListMode(string(i.Mode)); ok {
		i.Mode = m
	}
	i.Categories = compact(i.Categories, func(s string) string {
		return strings.TrimPrefix(strings.TrimSpace(s), "#")
	})
	i.Authors = compact(i.Authors, domain.NormalizeEmail)
}

// Validate validates the list input.
func (i ListPollsInput) Validate() error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be own, friends, browse or explore"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if len(i.Categories) > maxFilterValues {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too many values"})
	}
	if len(i.Authors) > maxFilterValues {
		errs = append(errs, domain.FieldError{Field: "author", Message: "too many values"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func appendQuestionErrors(errs []domain.FieldError, question string) []domain.FieldError {
	if question == "" {
		return append(errs, domain.FieldError{Field: "question", Message: "required"})
	}
	if len(question) > maxQuestionLength {
		return append(errs, domain.FieldError{Field: "question", Message: "too long"})
	}
	return errs
}

func appendImageErrors(errs []domain.FieldError, image *string) []domain.FieldError {
	if image != nil && len(*image) > maxImageLength {
		return append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}
	return errs
}

func appendPrivacyErrors(errs []domain.FieldError, p *PrivacyInput) []domain.FieldError {
	if p == nil {
		return errs
	}
	if len(p.AllowedViewers) > maxAllowedViewers {
		return append(errs, domain.FieldError{Field: "privacy.allowed_viewers", Message: "too many entries"})
	}
	for _, v := range p.AllowedViewers {
		if fe := domain.ValidateEmail("privacy.allowed_viewers", v); fe != nil {
			return append(errs, *fe)
		}
	}
	return errs
}

func normalizeViewers(viewers []string) []string {
	return compact(viewers, domain.NormalizeEmail)
}

// compact applies norm to every value and drops empty results and
// duplicates, keeping first-seen order. The result is never nil.
func compact(values []string, norm func(string) string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = norm(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (p *PrivacyInput) toDomain() domain.Privacy {
	if p == nil {
		return domain.Privacy{AllowedViewers: []string{}}
	}
	return domain.Privacy{
		PollHidden:     p.PollHidden,
		ResultsHidden:  p.ResultsHidden,
		AllowedViewers: p.AllowedViewers,
	}
}
