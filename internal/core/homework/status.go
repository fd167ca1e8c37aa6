// Package homework holds the review status domain: the status catalog,
// payload validation, message rendering and change tracking.
package homework

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus is returned for status codes outside the catalog.
var ErrUnknownStatus = errors.New("unknown homework status")

// Status is a review status code as reported by the upstream API.
type Status string

const (
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Known reports whether the status is one of the catalog entries.
func (s Status) Known() bool {
	_, ok := verdicts[s]
	return ok
}

// DisplayText returns the human-readable verdict for a status.
func DisplayText(s Status) (string, error) {
	text, ok := verdicts[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return text, nil
}
