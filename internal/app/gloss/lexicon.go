package gloss

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var defaultLexicon []byte

// VideoRef is one entry of a video sequence. Unmapped tokens keep their slot with
// Missing set so the sequence stays aligned with the gloss tokens.
type VideoRef struct {
	Gloss   string `json:"gloss"`
	URL     string `json:"url,omitempty"`
	Missing bool   `json:"missing,omitempty"`
}

// lexiconFile is the YAML layout of a lexicon.
type lexiconFile struct {
	BaseURL string            `yaml:"base_url"`
	Signs   map[string]string `yaml:"signs"`
}

// Lexicon is a static gloss token to sign video table.
type Lexicon struct {
	baseURL string
	signs   map[string]string
}

// DefaultLexicon returns the embedded lexicon.
func DefaultLexicon() (*Lexicon, error) {
	return ParseLexicon(defaultLexicon)
}

// LoadLexicon reads a YAML lexicon from disk; an empty path selects the embedded one.
func LoadLexicon(filePath string) (*Lexicon, error) {
	if filePath == "" {
		return DefaultLexicon()
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon: %w", err)
	}
	return ParseLexicon(data)
}

// ParseLexicon decodes a YAML lexicon. Video files must be plain file names.
func ParseLexicon(data []byte) (*Lexicon, error) {
	var file lexiconFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon YAML: %w", err)
	}

	base := file.BaseURL
	if base == "" {
		base = "/signs"
	}
	if !strings.HasPrefix(base, "/") && !strings.Contains(base, "://") {
		base = "/" + base
	}

	signs := make(map[string]string, len(file.Signs))
	for token, video := range file.Signs {
		key := normalizeToken(token)
		if key == "" {
			return nil, fmt.Errorf("lexicon entry with empty gloss token")
		}
		if video == "" || strings.ContainsAny(video, `/\`) || video == ".." {
			return nil, fmt.Errorf("lexicon entry %q: invalid video file %q", token, video)
		}
		signs[key] = video
	}

	return &Lexicon{baseURL: strings.TrimSuffix(base, "/"), signs: signs}, nil
}

// Len returns the number of gloss tokens in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.signs)
}

// Videos returns the distinct video files referenced by the lexicon, sorted.
func (l *Lexicon) Videos() []string {
	seen := make(map[string]struct{}, len(l.signs))
	videos := make([]string, 0, len(l.signs))
	for _, v := range l.signs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		videos = append(videos, v)
	}
	sort.Strings(videos)
	return videos
}

// Lookup returns the URL of the sign video for token.
func (l *Lexicon) Lookup(token string) (string, bool) {
	video, ok := l.signs[normalizeToken(token)]
	if !ok {
		return "", false
	}
	if strings.Contains(l.baseURL, "://") {
		return l.baseURL + "/" + url.PathEscape(video), true
	}
	return path.Join(l.baseURL, url.PathEscape(video)), true
}

// MapToVideos returns exactly one VideoRef per token, in token order.
func (l *Lexicon) MapToVideos(tokens []string) []VideoRef {
	refs := make([]VideoRef, len(tokens))
	for i, token := range tokens {
		if u, ok := l.Lookup(token); ok {
			refs[i] = VideoRef{Gloss: token, URL: u}
			continue
		}
		refs[i] = VideoRef{Gloss: token, Missing: true}
	}
	return refs
}

func normalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}
