package qrcode

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var ErrUnrecognizedCode = errors.New("unrecognized code")

var digitRun = regexp.MustCompile(`\d+`)

// IsOtpShaped decides the routing boundary of the free-text checkin field:
// a trimmed pure-digit string of exactly the OTP length goes to OTP
// verification, everything else to QR extraction.
func IsOtpShaped(input string, otpLength int) bool {
	input = strings.TrimSpace(input)
	if len(input) != otpLength {
		return false
	}
	return isDigits(input)
}

// ExtractPackageID parses whatever an operator pasted or a scanner decoded
// into a package id. Accepted shapes: a bare numeric id, "#42", an id= or
// package_id= query parameter, and a digit-bearing URL path segment. The
// fuzziness is deliberate: a single input field receives raw ids, full
// confirmation URLs and legacy view URLs alike.
func ExtractPackageID(input string) (int64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrUnrecognizedCode
	}

	if isDigits(input) {
		return parseID(input)
	}

	if rest, ok := strings.CutPrefix(input, "#"); ok && isDigits(rest) {
		return parseID(rest)
	}

	if parsed, err := url.Parse(input); err == nil {
		query := parsed.Query()
		for _, key := range []string{"package_id", "id"} {
			if value := query.Get(key); isDigits(value) && value != "" {
				return parseID(value)
			}
		}

		segments := strings.Split(parsed.Path, "/")
		for i := len(segments) - 1; i >= 0; i-- {
			if segments[i] != "" && isDigits(segments[i]) {
				return parseID(segments[i])
			}
		}
	}

	// last resort: first digit run anywhere in the input
	if run := digitRun.FindString(input); run != "" {
		return parseID(run)
	}

	return 0, ErrUnrecognizedCode
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrUnrecognizedCode
	}
	return id, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, char := range s {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}
