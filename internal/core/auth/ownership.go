package auth

import "github.com/freelancehub/marketplace-system/internal/core/domain"

// Authorize decides whether the authenticated identity may mutate a resource
// owned by ownerID. The check is reference-based, not role-based: a client
// role grants nothing beyond the resources that account itself owns.
//
// Resource services must call this before committing any update or delete.
// Messages check sender_id, projects client_id, bids freelancer_id;
// milestones and invoices resolve ownership through their project's client_id.
func Authorize(claims *Claims, ownerID string) error {
	if claims == nil || ownerID == "" || claims.Subject != ownerID {
		return domain.ErrForbidden
	}
	return nil
}
