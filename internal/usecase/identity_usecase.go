package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"bengal_portal/internal/domain/entities"
	"bengal_portal/internal/usecase/interfaces"
)

// ResolutionSource tells which rule produced the active user.
type ResolutionSource string

const (
	ResolutionSourceInvite  ResolutionSource = "invite"
	ResolutionSourceSession ResolutionSource = "session"
	ResolutionSourceRole    ResolutionSource = "role"
	ResolutionSourceNone    ResolutionSource = "none"
)

// ResolveInput is what an inbound request offers to identify its user.
type ResolveInput struct {
	InviteToken string
	Role        entities.UserRole
}

// Resolution is the outcome of Resolve. User is nil when nobody is signed in.
// TokenConsumed asks the caller to drop the invite code from the visible URL.
type Resolution struct {
	User          *entities.User
	Source        ResolutionSource
	TokenConsumed bool
}

// JobLookup finds the job an invite code refers to.
type JobLookup interface {
	GetByID(ctx context.Context, id string) (entities.Job, error)
}

// IIdentityUseCase decides who the active user is.
//
// Resolve checks, first match wins:
//   - an invite code equal to an existing job id
//   - the persisted session
//   - an explicit role selection (canned identity)

type IIdentityUseCase interface {
	Resolve(ctx context.Context, in ResolveInput) (Resolution, error)
	Current(ctx context.Context) (entities.User, error)
	Login(ctx context.Context, role entities.UserRole) (entities.User, error)
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, patch entities.ProfilePatch) (entities.User, error)
}

type IdentityUseCase struct {
	sessions interfaces.ISessionRepository
	jobs     JobLookup
	metrics  interfaces.ILifecycleMetrics

	mu sync.Mutex
}

var _ IIdentityUseCase = (*IdentityUseCase)(nil)

func NewIdentityUseCase(sessions interfaces.ISessionRepository, jobs JobLookup, metrics interfaces.ILifecycleMetrics) *IdentityUseCase {
	return &IdentityUseCase{sessions: sessions, jobs: jobs, metrics: metrics}
}

func (u *IdentityUseCase) Resolve(ctx context.Context, in ResolveInput) (Resolution, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if token := strings.TrimSpace(in.InviteToken); token != "" {
		user, ok, err := u.fromInvite(ctx, token)
		if err != nil {
			return Resolution{}, err
		}
		if ok {
			return u.resolved(&user, ResolutionSourceInvite, true), nil
		}
		log.Printf("[identity][usecase] invite code matched no job; falling through")
	}

	if user, ok, err := u.loadSession(ctx); err != nil {
		return Resolution{}, err
	} else if ok {
		return u.resolved(&user, ResolutionSourceSession, false), nil
	}

	if in.Role != "" {
		user, err := u.loginLocked(ctx, in.Role)
		if err != nil {
			return Resolution{}, err
		}
		return u.resolved(&user, ResolutionSourceRole, false), nil
	}

	return u.resolved(nil, ResolutionSourceNone, false), nil
}

// fromInvite builds and persists the customer identity an invite code
// stands for. ok is false when no job carries the code as its id.
func (u *IdentityUseCase) fromInvite(ctx context.Context, token string) (entities.User, bool, error) {
	job, err := u.jobs.GetByID(ctx, token)
	if errors.Is(err, ErrNotFound) {
		return entities.User{}, false, nil
	}
	if err != nil {
		log.Printf("[identity][usecase] invite lookup failed err=%v", err)
		return entities.User{}, false, err
	}

	user := entities.User{
		ID:    job.CustomerID,
		Name:  job.CustomerName,
		Email: entities.InviteUserEmail,
		Role:  entities.UserRoleCustomer,
	}
	if user.ID == "" {
		user.ID = "u-" + token
	}
	if user.Name == "" {
		user.Name = entities.InviteUserFallbackName
	}

	if err := u.sessions.Save(ctx, user); err != nil {
		log.Printf("[identity][usecase] invite session persist failed job_id=%s err=%v", job.ID, err)
		return entities.User{}, false, err
	}
	log.Printf("[identity][usecase] invite resolved job_id=%s user_id=%s", job.ID, user.ID)
	return user, true, nil
}

// loadSession reads the persisted user. A corrupt payload reads as no session.
func (u *IdentityUseCase) loadSession(ctx context.Context) (entities.User, bool, error) {
	user, found, err := u.sessions.Load(ctx)
	if errors.Is(err, ErrCorruptSession) {
		log.Printf("[identity][usecase] stored session unreadable; ignoring err=%v", err)
		return entities.User{}, false, nil
	}
	if err != nil {
		return entities.User{}, false, err
	}
	return user, found, nil
}

func (u *IdentityUseCase) resolved(user *entities.User, src ResolutionSource, consumed bool) Resolution {
	if u.metrics != nil {
		u.metrics.IncIdentityResolved(string(src))
	}
	return Resolution{User: user, Source: src, TokenConsumed: consumed}
}

func (u *IdentityUseCase) Current(ctx context.Context) (entities.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok, err := u.loadSession(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if !ok {
		return entities.User{}, ErrUnauthenticated
	}
	return user, nil
}

// Login signs in as the canned identity of role, replacing any session.
func (u *IdentityUseCase) Login(ctx context.Context, role entities.UserRole) (entities.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.loginLocked(ctx, role)
}

func (u *IdentityUseCase) loginLocked(ctx context.Context, role entities.UserRole) (entities.User, error) {
	role = entities.UserRole(strings.ToUpper(strings.TrimSpace(string(role))))
	user, ok := entities.CannedUser(role)
	if !ok {
		return entities.User{}, validationError("unknown role %q", role)
	}
	if err := u.sessions.Save(ctx, user); err != nil {
		log.Printf("[identity][usecase] login persist failed role=%s err=%v", role, err)
		return entities.User{}, err
	}
	log.Printf("[identity][usecase] login success role=%s user_id=%s", role, user.ID)
	return user, nil
}

// Logout forgets the session user only. Jobs, quotes and chat history stay
// in the store for whoever signs in next on this device.
func (u *IdentityUseCase) Logout(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.sessions.Clear(ctx); err != nil {
		log.Printf("[identity][usecase] logout failed err=%v", err)
		return err
	}
	log.Printf("[identity][usecase] logout success")
	return nil
}

// UpdateProfile edits the contact fields of the signed-in customer.
func (u *IdentityUseCase) UpdateProfile(ctx context.Context, patch entities.ProfilePatch) (entities.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	user, ok, err := u.loadSession(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if !ok {
		return entities.User{}, ErrUnauthenticated
	}
	if user.Role != entities.UserRoleCustomer {
		return entities.User{}, ErrForbidden
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return entities.User{}, validationError("name must not be blank")
	}
	if patch.Email != nil && !strings.Contains(*patch.Email, "@") {
		return entities.User{}, validationError("email %q", *patch.Email)
	}

	updated := patch.Apply(user)
	if err := u.sessions.Save(ctx, updated); err != nil {
		log.Printf("[identity][usecase] profile persist failed user_id=%s err=%v", user.ID, err)
		return entities.User{}, err
	}
	log.Printf("[identity][usecase] profile updated user_id=%s", user.ID)
	return updated, nil
}
