// Package render turns classification results into console output. All
// presentation text (banner, links, disclaimer) comes in through Options so
// the adapters share one source of truth instead of package globals.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hawkeyes-osint/pushtoken/internal/classifier"
)

// Format selects the console output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, json or yaml)", s)
	}
}

// Options carries the presentation text and layout settings for a renderer.
type Options struct {
	AppName           string
	Tagline           string
	Website           string
	SupportEmail      string
	Disclaimer        []string
	TokenDisplayWidth int
}

// DefaultOptions returns the stock presentation settings.
func DefaultOptions() Options {
	return Options{
		AppName:           "Push Token Analyzer",
		Tagline:           "HawkEyes OSINT - https://hawk-eyes.io",
		Website:           "https://hawk-eyes.io",
		SupportEmail:      "customer_service@hawk-eyes.io",
		TokenDisplayWidth: 50,
		Disclaimer: []string{
			"Push tokens are opaque identifiers - no user/device data extractable",
			"Analysis based on format patterns - not guaranteed to be accurate",
			"Tokens can expire, be invalidated, or change format without notice",
			"Use responsibly and in compliance with privacy regulations",
		},
	}
}

// Renderer writes classification results in one of the supported encodings.
type Renderer struct {
	opts Options
}

func New(opts Options) *Renderer {
	if opts.TokenDisplayWidth <= 0 {
		opts.TokenDisplayWidth = 50
	}
	return &Renderer{opts: opts}
}

// Render dispatches on format.
func (r *Renderer) Render(w io.Writer, format Format, res classifier.Result) error {
	switch format {
	case FormatJSON:
		return r.JSON(w, res)
	case FormatYAML:
		return r.YAML(w, res)
	default:
		return r.Text(w, res)
	}
}

// Banner writes the tool header shown before text output.
func (r *Renderer) Banner(w io.Writer, version string) {
	fmt.Fprintf(w, "%s v%s\n", r.opts.AppName, version)
	fmt.Fprintln(w, r.opts.Tagline)
	fmt.Fprintln(w, strings.Repeat("=", 50))
}

// Text writes the aligned, human-readable report.
func (r *Renderer) Text(w io.Writer, res classifier.Result) error {
	rule := strings.Repeat("=", 60)

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "PUSH TOKEN ANALYSIS")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Token: %s\n", r.truncate(res.Token))
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Provider: %s\n", res.Provider)
	fmt.Fprintf(w, "Platform: %s\n", res.Platform)
	fmt.Fprintf(w, "Token Type: %s\n", res.TokenType)
	fmt.Fprintf(w, "Token Length: %d characters\n", res.TokenLength)
	fmt.Fprintf(w, "Confidence: %s\n", res.Confidence)

	if notes := FilterEmpty(res.Characteristics); len(notes) > 0 {
		fmt.Fprintln(w, "\nCharacteristics:")
		for i, note := range notes {
			fmt.Fprintf(w, "  %d. %s\n", i+1, note)
		}
	}

	if len(r.opts.Disclaimer) > 0 {
		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintln(w, "IMPORTANT NOTES:")
		for _, line := range r.opts.Disclaimer {
			fmt.Fprintf(w, "• %s\n", line)
		}
		fmt.Fprintf(w, "%s\n\n", rule)
	}

	return nil
}

// JSON writes the result as an indented JSON document.
func (r *Renderer) JSON(w io.Writer, res classifier.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// YAML writes the result as a YAML document.
func (r *Renderer) YAML(w io.Writer, res classifier.Result) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(res)
}

// RenderError reports an invalid-input failure in the requested format.
func (r *Renderer) RenderError(w io.Writer, format Format, token string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(errorDocument{Error: ErrorMessage, Token: token})
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(errorDocument{Error: ErrorMessage, Token: token})
	default:
		rule := strings.Repeat("=", 60)
		fmt.Fprintf(w, "\n%s\n", rule)
		fmt.Fprintln(w, "PUSH TOKEN ANALYSIS")
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Token: %s\n", r.truncate(token))
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "ERROR: %s\n", ErrorMessage)
		return nil
	}
}

// ErrorMessage is the user-facing text for classifier.ErrInvalidToken.
const ErrorMessage = "Invalid token provided"

type errorDocument struct {
	Error string `json:"error" yaml:"error"`
	Token string `json:"token" yaml:"token"`
}

// FilterEmpty drops empty characteristic entries before display.
func FilterEmpty(notes []string) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}
	return out
}

func (r *Renderer) truncate(token string) string {
	// Truncate on runes so a multibyte character is never split.
	runes := []rune(token)
	if len(runes) > r.opts.TokenDisplayWidth {
		return string(runes[:r.opts.TokenDisplayWidth]) + "..."
	}
	return token
}
