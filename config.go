package crudview

import (
	"strings"
	"unicode"
)

// Config holds the static, per-view configuration. It is set once when the
// view is constructed and is read-only at request time.
type Config struct {
	// VerboseName is the template context key for a single record.
	// Defaults to the lowercased model type name.
	VerboseName string

	// VerboseNamePlural is the template context key for a collection of
	// records. Defaults to a pluralized VerboseName.
	VerboseNamePlural string

	// TemplateFolder is the folder the convention-based template paths are
	// resolved under, e.g. "templates/tasks".
	TemplateFolder string

	// CustomTemplates maps an operation name (list, detail, create, update,
	// delete) to an explicit template path, overriding the folder convention.
	CustomTemplates map[string]string

	// RedirectURL is the target of the redirect issued after a successful
	// create, update or delete. Returned verbatim.
	RedirectURL string

	// PKParam is the path wildcard name the primary key is read from
	// (default: "pk").
	PKParam string

	// PaginateBy is the page size for the list operation. Zero disables
	// pagination.
	PaginateBy int

	// AllowedViews lists the enabled operations. Empty means all five.
	AllowedViews []string
}

// withDefaults fills in derived defaults for the given model type name.
func (c Config) withDefaults(modelName string) Config {
	if c.VerboseName == "" {
		c.VerboseName = strings.ToLower(modelName)
	}
	if c.VerboseNamePlural == "" {
		c.VerboseNamePlural = pluralize(c.VerboseName)
	}
	if c.PKParam == "" {
		c.PKParam = "pk"
	}
	return c
}

// allowedSet validates AllowedViews and converts it to a lookup set.
// An empty list enables all operations.
func (c Config) allowedSet() (map[Operation]bool, error) {
	allowed := make(map[Operation]bool, len(AllOperations))
	if len(c.AllowedViews) == 0 {
		for _, op := range AllOperations {
			allowed[op] = true
		}
		return allowed, nil
	}
	for _, name := range c.AllowedViews {
		op := Operation(strings.ToLower(strings.TrimSpace(name)))
		if !isKnownOperation(op) {
			return nil, configErrorf("unknown operation %q in AllowedViews", name)
		}
		allowed[op] = true
	}
	return allowed, nil
}

// pluralize applies common English pluralization rules. Good enough for
// context key defaults; set VerboseNamePlural for irregular nouns.
func pluralize(word string) string {
	if word == "" {
		return ""
	}
	switch {
	case strings.HasSuffix(word, "s"),
		strings.HasSuffix(word, "x"),
		strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "sh"):
		return word + "es"
	case strings.HasSuffix(word, "y") && len(word) > 1 && !isVowel(rune(word[len(word)-2])):
		return word[:len(word)-1] + "ies"
	default:
		return word + "s"
	}
}

func isVowel(r rune) bool {
	return strings.ContainsRune("aeiou", unicode.ToLower(r))
}
