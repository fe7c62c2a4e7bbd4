package requests

import (
	"errors"
	"regexp"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrInvalidEmail  = errors.New("Invalid email address")
)

// emailPattern needs a local part, an "@" and a domain containing a dot.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks that every required field is present and the email is
// plausibly shaped. Institution is optional.
func Validate(req models.DownloadRequest) error {
	if req.Name == "" || req.Email == "" || req.Purpose == "" || req.PublicationID == "" || !req.AgreeToTerms {
		return ErrMissingFields
	}
	if !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	return nil
}
