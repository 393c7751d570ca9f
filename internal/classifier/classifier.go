// Package classifier infers the likely provider, platform and category of a
// push-notification token from its shape alone. Tokens are opaque: every
// inference here comes from length, character set, delimiters and known
// prefixes, never from decoding the token or contacting a provider.
package classifier

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrInvalidToken is returned when the input is empty after trimming.
var ErrInvalidToken = errors.New("invalid token provided")

// Confidence is a qualitative strength label, not a probability.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Result holds everything inferred from a single token. It is a plain value;
// once returned it is never mutated by this package.
type Result struct {
	Token           string     `json:"token" yaml:"token"`
	TokenLength     int        `json:"token_length" yaml:"token_length"`
	Provider        string     `json:"provider" yaml:"provider"`
	Platform        string     `json:"platform" yaml:"platform"`
	Environment     string     `json:"environment" yaml:"environment"`
	TokenType       string     `json:"token_type" yaml:"token_type"`
	Characteristics []string   `json:"characteristics" yaml:"characteristics"`
	Confidence      Confidence `json:"confidence" yaml:"confidence"`
}

var (
	apnsTokenPattern = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)
	hexPattern       = regexp.MustCompile(`^[a-fA-F0-9]+$`)
	base64Pattern    = regexp.MustCompile(`^[A-Za-z0-9+/]+=*$`)
	urlSafePattern   = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// Classify runs the token through an ordered, first-match-wins decision list
// and returns the inferences. It is a pure function of its input and safe for
// concurrent use.
func Classify(token string) (Result, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Result{}, ErrInvalidToken
	}

	// Length thresholds count characters, not bytes, so multibyte input
	// classifies the same as its character count suggests.
	length := utf8.RuneCountInString(token)

	res := Result{
		Token:       token,
		TokenLength: length,
		Provider:    "Unknown",
		Platform:    "Unknown",
		Environment: "Unknown",
		TokenType:   "Unknown",
		Confidence:  ConfidenceLow,
	}

	switch {
	// APNs device tokens are 32 bytes rendered as 64 hex characters.
	case apnsTokenPattern.MatchString(token):
		res.Provider = "Apple Push Notification Service (APNs)"
		res.Platform = "iOS/macOS/watchOS/tvOS"
		res.TokenType = "Device Token"
		res.Confidence = ConfidenceHigh
		res.Characteristics = []string{
			"32-byte binary value represented as hex",
			"Tied to specific app and device combination",
			"Opaque identifier - no extractable metadata",
		}

	// FCM registration tokens are long base64-like strings with a colon
	// separating the instance id from the rest.
	case strings.Contains(token, ":") && length > 100:
		res.Provider = "Firebase Cloud Messaging (FCM)"
		res.Platform = "Android/Web"
		res.TokenType = "Registration Token"
		res.Confidence = ConfidenceHigh
		res.Characteristics = []string{
			"Base64-encoded with delimiters",
			"Refreshed periodically for security",
			"Tied to app instance on device",
		}
		if strings.Contains(token, "APA91b") {
			res.Characteristics = append(res.Characteristics, "Contains APA91b prefix (common in FCM)")
		}

	// Web push subscriptions are full endpoint URLs.
	case strings.HasPrefix(token, "https://"):
		res.TokenType = "Web Push Endpoint"
		res.Platform = "Web Browser"
		res.Confidence = ConfidenceHigh
		classifyEndpoint(token, &res)

	case length > 100 && urlSafePattern.MatchString(token):
		res.Provider = "Possibly Huawei Push Kit or other Android push service"
		res.Platform = "Android (Huawei devices)"
		res.TokenType = "Push Token"
		res.Confidence = ConfidenceMedium
		res.Characteristics = []string{
			"Long alphanumeric string",
			"Could be Huawei Push Kit or other Android push service",
			"Requires additional context for definitive identification",
		}

	case length < 50:
		res.Provider = "Unknown/Custom Push Service"
		res.TokenType = "Short Token"
		res.Confidence = ConfidenceLow
		res.Characteristics = []string{
			"Unusually short for modern push tokens",
			"Possibly legacy system or custom implementation",
		}

	case length > 200:
		res.TokenType = "Long Token"
		res.Characteristics = []string{
			"Unusually long token",
			"Possibly custom implementation or encoded data",
		}
	}

	// Format note, independent of which branch fired. Hex is a subset of the
	// other alphabets, so it has to be tested first.
	switch {
	case hexPattern.MatchString(token):
		res.Characteristics = append(res.Characteristics, "Pure hexadecimal format")
	case base64Pattern.MatchString(token):
		res.Characteristics = append(res.Characteristics, "Base64-encoded format")
	case urlSafePattern.MatchString(token):
		res.Characteristics = append(res.Characteristics, "URL-safe base64 or alphanumeric format")
	}

	return res, nil
}

// classifyEndpoint narrows a web push endpoint down to the hosting service.
// Endpoints from hosts we do not recognise keep the generic web push fields.
func classifyEndpoint(token string, res *Result) {
	switch {
	case strings.Contains(token, "fcm.googleapis.com"):
		res.Provider = "Firebase Cloud Messaging (Web Push)"
		res.Characteristics = []string{
			"Google Cloud Messaging for web push",
			"Chrome/Chromium-based browser likely",
		}
	case strings.Contains(token, "mozilla.com"):
		res.Provider = "Mozilla Push Service"
		res.Characteristics = []string{"Firefox browser"}
	case strings.Contains(token, "windows.com"), strings.Contains(token, "microsoft.com"):
		res.Provider = "Windows Push Notification Service"
		res.Characteristics = []string{"Microsoft Edge or Windows app"}
	}
}
