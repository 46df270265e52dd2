package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslation "github.com/go-playground/validator/v10/translations/en"

	"github.com/yourmjk/d3f-metadata-exporter/internal/metadata/dto"
	"github.com/yourmjk/d3f-metadata-exporter/internal/model"
)

// Parser decodes catalog JSON into a model.Document.
//
// Besides syntax, the Parser checks that required fields are present:
// "nummer" for entries of numbered collections and "teilNummer" for parts.
// Titles are not checked here, a missing title only fails the export of
// the affected entry.
//
// Example usage:
//
//	parser := NewParser()
//	doc, err := parser.ParseFile("/path/to/Metadaten.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
type Parser struct {
	validate   *validator.Validate
	translator ut.Translator
}

// NewParser creates a new Parser.
func NewParser() *Parser {
	validate := validator.New()

	enLocale := en.New()
	translator, found := ut.New(enLocale, enLocale).GetTranslator("en")
	if !found {
		panic(fmt.Errorf("en translator was not found"))
	}
	if err := enTranslation.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(fmt.Errorf("translator was not registered: %w", err))
	}

	// Use JSON field names in error messages, hide embedded structs
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if fld.Anonymous {
			return "__nested__"
		}
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Parser{validate: validate, translator: translator}
}

// ParseFile reads and decodes the catalog at path.
func (p *Parser) ParseFile(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse JSON file %q: %w", path, err)
	}

	doc, err := p.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse JSON file %q: %w", path, err)
	}

	return doc, nil
}

// Parse decodes catalog JSON.
//
// Returns an error if the JSON is malformed or a required field is missing.
func (p *Parser) Parse(data []byte) (*model.Document, error) {
	var jsonDoc dto.JSONDocument
	if err := json.Unmarshal(data, &jsonDoc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	if err := p.validate.Struct(&jsonDoc); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, p.processValidateError(validationErrs)
		}
		return nil, err
	}

	return jsonDoc.ToDocument(), nil
}

// processValidateError turns validator errors into one error per field,
// each prefixed with the JSON path of the field, e.g. "serie[3].nummer".
func (p *Parser) processValidateError(validationErrs validator.ValidationErrors) error {
	errs := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		errs = append(errs, fmt.Errorf("%s: %s", fieldPath(e.Namespace()), e.Translate(p.translator)))
	}
	return fmt.Errorf("invalid document: %w", errors.Join(errs...))
}

// fieldPath removes the root struct name and embedded struct markers.
func fieldPath(namespace string) string {
	namespace = strings.ReplaceAll(namespace, "__nested__.", "")
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}
