package ports

import "github.com/valo-rant/community-api/internal/core/domain"

// AuthorizationPolicy decides whether a claim carries administrator
// privilege. Stores consult the policy before any other check on a gated
// mutation. The default policy trusts the request-supplied flag verbatim
// (the original contract); a token-verifying policy can be substituted
// without touching store logic.
type AuthorizationPolicy interface {
	Authorize(claim domain.Claim) error
}
