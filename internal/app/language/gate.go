package language

import (
	"github.com/samber/lo"

	apperrors "voicemap/internal/app/errors"
)

// Gate restricts the pipeline to languages the gloss stage understands.
type Gate struct {
	supported []string
}

// NewGate returns a gate accepting the given language codes.
func NewGate(supported []string) *Gate {
	codes := lo.Uniq(lo.Map(supported, func(code string, _ int) string {
		return Normalize(code)
	}))
	return &Gate{supported: codes}
}

// Supported returns the accepted language codes.
func (g *Gate) Supported() []string {
	return append([]string(nil), g.supported...)
}

// Allows reports whether lang is accepted.
func (g *Gate) Allows(lang string) bool {
	return lo.Contains(g.supported, Normalize(lang))
}

// Check returns text and lang unchanged when lang is supported and an
// UnsupportedLanguage error carrying the detected code otherwise.
func (g *Gate) Check(text, lang string) (string, string, error) {
	if !g.Allows(lang) {
		return "", "", apperrors.UnsupportedLanguage(lang)
	}
	return text, lang, nil
}
