package platform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrAlreadyRunning is an error returned when a publication can't be started
// because a previous run for the same item is not finished yet.
var ErrAlreadyRunning = errors.New("publication already running for this item")

// ListingError is a publication failure carrying one message per distinct reason.
// Bag keys are "article" for article-level reasons and "variation-<id>" for
// per-variation reasons.
type ListingError struct {
	Key string
	Bag map[string]string
}

// NewListingError returns ListingError built from article-level reasons and
// per-variation reason lists.
func NewListingError(key string, articleErrors []string, variationErrors map[int64][]string) *ListingError {
	bag := make(map[string]string, len(variationErrors)+1)

	if len(articleErrors) > 0 {
		bag["article"] = strings.Join(articleErrors, ",\n")
	}
	for variationID, reasons := range variationErrors {
		bag[fmt.Sprintf("variation-%d", variationID)] = strings.Join(reasons, ",\n")
	}

	return &ListingError{
		Key: key,
		Bag: bag,
	}
}

// Error returns the message key with all bagged reasons.
func (e *ListingError) Error() string {
	if len(e.Bag) == 0 {
		return e.Key
	}

	keys := make([]string, 0, len(e.Bag))
	for key := range e.Bag {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	reasons := make([]string, 0, len(keys))
	for _, key := range keys {
		reasons = append(reasons, fmt.Sprintf("%s: %s", key, e.Bag[key]))
	}

	return fmt.Sprintf("%s (%s)", e.Key, strings.Join(reasons, "; "))
}
