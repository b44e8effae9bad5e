package gloss

// Service bundles the two gloss stages behind the error-returning contract the
// pipeline expects from its gloss collaborator.
type Service struct {
	glosser *Glosser
	lexicon *Lexicon
}

// NewService wires a glosser to a lexicon.
func NewService(glosser *Glosser, lexicon *Lexicon) *Service {
	return &Service{glosser: glosser, lexicon: lexicon}
}

// GlossText converts transcript text into gloss tokens.
func (s *Service) GlossText(text string) ([]string, error) {
	return s.glosser.Gloss(text), nil
}

// MapGlossToVideos maps every token to a sign video reference, preserving order.
func (s *Service) MapGlossToVideos(tokens []string) ([]VideoRef, error) {
	return s.lexicon.MapToVideos(tokens), nil
}
