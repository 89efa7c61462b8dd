package identity

import "context"

// ScopeKind tags the outcome of a role probe.
type ScopeKind int

const (
	// KindUnauthorized means the user is neither an admin nor a manager.
	KindUnauthorized ScopeKind = iota
	// KindAdmin bypasses store-ownership checks.
	KindAdmin
	// KindManager restricts the user to stores whose managerID matches.
	KindManager
)

// Resolution is the tagged result of ResolveRole. Privileged operations match
// on Kind exhaustively instead of re-deriving the role inline.
type Resolution struct {
	Kind   ScopeKind
	UserID int64
}

// Scope is a resolved (role, store) pair. StoreID is 0 when the store could
// not be resolved; the calling operation must abort, not crash.
type Scope struct {
	Kind    ScopeKind
	UserID  int64
	StoreID int64
}

// Authorized reports whether the operation may proceed against Scope.StoreID.
func (s Scope) Authorized() bool {
	return s.Kind != KindUnauthorized && s.StoreID != 0
}

// Resolver maps a raw user identifier to an authorized role and store scope.
type Resolver struct {
	repo Repository
}

// NewResolver creates a new role resolver.
func NewResolver(repo Repository) *Resolver {
	return &Resolver{repo: repo}
}

// ResolveRole probes admin status first, then manager status. Admin takes
// precedence if both would match.
func (r *Resolver) ResolveRole(ctx context.Context, userID int64) (Resolution, error) {
	admin, err := r.repo.HasRole(ctx, userID, RoleAdmin)
	if err != nil {
		return Resolution{}, err
	}
	if admin {
		return Resolution{Kind: KindAdmin, UserID: userID}, nil
	}

	manager, err := r.repo.HasRole(ctx, userID, RoleManager)
	if err != nil {
		return Resolution{}, err
	}
	if manager {
		return Resolution{Kind: KindManager, UserID: userID}, nil
	}
	return Resolution{Kind: KindUnauthorized, UserID: userID}, nil
}

// ResolveManagedStore returns candidateStoreID only when a store with that ID
// is managed by the user; otherwise 0. The zero result is a sentinel, not an
// error.
func (r *Resolver) ResolveManagedStore(ctx context.Context, userID, candidateStoreID int64) (int64, error) {
	return r.repo.ManagedStoreID(ctx, userID, candidateStoreID)
}

// ResolveScope combines the two probes. Admins get the candidate store with no
// ownership check; managers must own it; everyone else is unauthorized.
func (r *Resolver) ResolveScope(ctx context.Context, userID, candidateStoreID int64) (Scope, error) {
	res, err := r.ResolveRole(ctx, userID)
	if err != nil {
		return Scope{}, err
	}
	switch res.Kind {
	case KindAdmin:
		return Scope{Kind: KindAdmin, UserID: userID, StoreID: candidateStoreID}, nil
	case KindManager:
		storeID, err := r.ResolveManagedStore(ctx, userID, candidateStoreID)
		if err != nil {
			return Scope{}, err
		}
		return Scope{Kind: KindManager, UserID: userID, StoreID: storeID}, nil
	default:
		return Scope{Kind: KindUnauthorized, UserID: userID}, nil
	}
}
