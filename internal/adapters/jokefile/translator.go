package jokefile

import (
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sirbot/sir/internal/domain"
)

// jokesFile is the on-disk collection format.
type jokesFile struct {
	Jokes []jokeRecord `json:"jokes"`
}

// jokeRecord is a single raw entry before validation.
type jokeRecord struct {
	Setup     string `json:"setup"     validate:"required,notblank"`
	Punchline string `json:"punchline" validate:"required,notblank"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// required passes whitespace-only strings, which are just as unusable
	// as missing ones.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// translateRecords validates raw records and converts the valid ones to
// domain Jokes, each assigned a fresh opaque handle. Invalid records are
// skipped with a warning rather than failing the whole load.
func translateRecords(records []jokeRecord, logger *slog.Logger) ([]domain.Joke, int) {
	jokes := make([]domain.Joke, 0, len(records))
	skipped := 0

	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			skipped++
			schemaErr := domain.NewSchemaError(i, describeValidation(err))
			logger.Warn("skipping invalid joke record",
				slog.Int("index", i),
				slog.String("reason", schemaErr.Error()),
			)

			continue
		}

		jokes = append(jokes, domain.Joke{
			ID:        uuid.NewString(),
			Setup:     strings.TrimSpace(rec.Setup),
			Punchline: strings.TrimSpace(rec.Punchline),
		})
	}

	return jokes, skipped
}

// describeValidation flattens validator output into a short reason string.
func describeValidation(err error) string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		parts = append(parts, strings.ToLower(fieldErr.Field())+" is "+tagReason(fieldErr.Tag()))
	}

	return strings.Join(parts, "; ")
}

func tagReason(tag string) string {
	switch tag {
	case "required":
		return "missing"
	case "notblank":
		return "blank"
	default:
		return "invalid (" + tag + ")"
	}
}
