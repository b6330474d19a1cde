package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/lskolhar/complain-hub/internal/apperr"
	"github.com/lskolhar/complain-hub/internal/config"
	"github.com/lskolhar/complain-hub/internal/docstore"
)

// Users manages the user profile documents. Redis holds a fast block
// marker per blocked uid and may be nil (the admin CLI runs without it).
type Users struct {
	Store       docstore.Store
	Redis       *redis.Client
	DefaultRole string
}

// NewUsers creates the user profile service.
func NewUsers(store docstore.Store, rdb *redis.Client, defaultRole string) *Users {
	return &Users{Store: store, Redis: rdb, DefaultRole: defaultRole}
}

// EnsureProfile backfills the profile document for an already-verified
// identity when it is missing. The caller decides whether a failure
// matters: token verification treats it as best-effort and only logs it.
func (u *Users) EnsureProfile(ctx context.Context, id Identity) error {
	_, err := u.Store.Get(ctx, config.UsersCollection, id.UID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return apperr.Storage("error checking user profile", err)
	}

	profile := docstore.Document{
		"uid":         id.UID,
		"email":       id.Email,
		"name":        id.Name,
		"role":        id.Role,
		"department":  "",
		"studentId":   "",
		"status":      config.DefaultUserStatus,
		"blockReason": "",
	}
	if err := u.Store.Set(ctx, config.UsersCollection, id.UID, profile); err != nil {
		return apperr.Storage("error creating user profile", err)
	}
	return nil
}

// Signup creates a new profile document. The credential itself is owned by
// the external identity provider; only the profile is stored here.
func (u *Users) Signup(ctx context.Context, payload docstore.Document) (docstore.Document, error) {
	email, _ := payload["email"].(string)
	name, _ := payload["name"].(string)
	if email == "" || name == "" {
		return nil, apperr.Validation("missing required fields: email or name")
	}

	profile := docstore.Document{
		"uid":         uuid.New().String(),
		"email":       email,
		"name":        name,
		"role":        stringOr(payload, "role", u.DefaultRole),
		"department":  stringOr(payload, "department", ""),
		"studentId":   stringOr(payload, "studentId", ""),
		"status":      stringOr(payload, "status", config.DefaultUserStatus),
		"blockReason": stringOr(payload, "blockReason", ""),
	}
	uid := profile["uid"].(string)
	if err := u.Store.Set(ctx, config.UsersCollection, uid, profile); err != nil {
		return nil, apperr.Storage("error creating user", err)
	}
	return profile, nil
}

// Edit updates the mutable profile fields. Only name and department are
// editable; anything else in the payload is ignored.
func (u *Users) Edit(ctx context.Context, id string, payload docstore.Document) error {
	updates := docstore.Document{}
	if name, ok := payload["name"]; ok {
		updates["name"] = name
	}
	if department, ok := payload["department"]; ok {
		updates["department"] = department
	}
	if len(updates) == 0 {
		return apperr.Validation("no valid fields to update")
	}
	if err := u.Store.Update(ctx, config.UsersCollection, id, updates); err != nil {
		return apperr.Storage("error updating user", err)
	}
	return nil
}

// ListAll returns every stored profile document.
func (u *Users) ListAll(ctx context.Context) ([]docstore.Document, error) {
	stored, err := u.Store.GetAll(ctx, config.UsersCollection)
	if err != nil {
		return nil, apperr.Storage("failed to fetch users", err)
	}
	users := make([]docstore.Document, 0, len(stored))
	for _, doc := range stored {
		users = append(users, doc.Data)
	}
	return users, nil
}

// Block marks a user blocked and records the reason. The Redis marker lets
// request middleware check the block without a store round-trip.
func (u *Users) Block(ctx context.Context, id, reason string) error {
	err := u.Store.Update(ctx, config.UsersCollection, id, docstore.Document{
		"status":      config.BlockedUserStatus,
		"blockReason": reason,
	})
	if err != nil {
		return apperr.Storage("failed to block user", err)
	}
	if u.Redis != nil {
		u.Redis.Set(ctx, blockKey(id), config.BlockedUserStatus, 0)
	}
	return nil
}

// Unblock restores a blocked user.
func (u *Users) Unblock(ctx context.Context, id string) error {
	err := u.Store.Update(ctx, config.UsersCollection, id, docstore.Document{
		"status":      config.DefaultUserStatus,
		"blockReason": "",
	})
	if err != nil {
		return apperr.Storage("failed to unblock user", err)
	}
	if u.Redis != nil {
		u.Redis.Del(ctx, blockKey(id))
	}
	return nil
}

// IsBlocked checks the Redis block marker.
func (u *Users) IsBlocked(ctx context.Context, id string) (bool, error) {
	if u.Redis == nil {
		return false, nil
	}
	status, err := u.Redis.Get(ctx, blockKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return status != "", nil
}

func blockKey(id string) string { return "block:" + id }

func stringOr(doc docstore.Document, key, fallback string) string {
	if v, ok := doc[key].(string); ok && v != "" {
		return v
	}
	return fallback
}
