// Package auth provides the authorization policies consulted by the
// collection stores on admin-gated mutations.
package auth

import "github.com/valo-rant/community-api/internal/core/domain"

// ClaimPolicy authorizes based solely on the request-supplied isAdmin flag.
// The flag is a client assertion, not a verified credential; any caller can
// set it. This preserves the wire contract. Substitute TokenPolicy for a
// verified check.
type ClaimPolicy struct{}

func (ClaimPolicy) Authorize(claim domain.Claim) error {
	if !claim.IsAdmin {
		return domain.ErrForbidden
	}
	return nil
}
