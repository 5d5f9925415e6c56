package api

import (
	"fmt"
	"strings"

	"github.com/AnotherFullstackDev/sellctl/internal/lib"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/blacklists"
	"github.com/AnotherFullstackDev/sellctl/internal/sellapp/api/tickets"
)

const (
	createProductDocsURL = "https://developer.sell.app/#tag/Products-(v1)/paths/~1api~1v1~1listings/post"
	updateProductDocsURL = "https://developer.sell.app/#tag/Products-(v1)/paths/~1api~1v1~1listings~1%7Blisting%7D/patch"
	updateSectionDocsURL = "https://developer.sell.app/#tag/Sections/paths/~1api~1v1~1sections~1%7Bsection%7D/patch"
)

func normalizeBlacklistType(t blacklists.Type) (blacklists.Type, error) {
	normalized := blacklists.Type(strings.ToUpper(string(t)))
	for _, allowed := range blacklists.Types {
		if normalized == allowed {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("blacklist type %q is not \"EMAIL\", \"IP\", or \"COUNTRY\": %w", t, lib.BadUserInputError)
}

// normalizeAuthor accepts an empty author, which leaves the field out of the request.
func normalizeAuthor(author tickets.Author) (tickets.Author, error) {
	if author == "" {
		return "", nil
	}
	normalized := tickets.Author(strings.ToUpper(string(author)))
	for _, allowed := range tickets.Authors {
		if normalized == allowed {
			return normalized, nil
		}
	}
	return "", fmt.Errorf("author %q must be either customer or store: %w", author, lib.BadUserInputError)
}

func requirePayload(payload map[string]any, docsURL string) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty, please provide the fields described at %s: %w", docsURL, lib.BadUserInputError)
	}
	return nil
}
