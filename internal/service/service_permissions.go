package service

import (
	"github.com/mdpad/go-note-keeper/internal/config"
	"github.com/mdpad/go-note-keeper/models"
)

type permissionEvaluator struct {
	policy config.Permissions
}

// NewPermissionEvaluator returns a PermissionEvaluator driven by the instance
// policy. Decisions are deterministic and deny by default.
func NewPermissionEvaluator(policy config.Permissions) PermissionEvaluator {
	return &permissionEvaluator{policy: policy}
}

func (p *permissionEvaluator) IsOwner(user *models.User, note models.Note) bool {
	if user == nil || note.OwnerID == nil {
		return false
	}
	return *note.OwnerID == user.UserID
}

// MayRead grants reads to the owner, to anyone when the note is ownerless,
// and to everyone else only under the shared-read policy.
func (p *permissionEvaluator) MayRead(user *models.User, note models.Note) bool {
	if p.IsOwner(user, note) {
		return true
	}
	if note.OwnerID == nil {
		return true
	}
	return p.policy.SharedRead
}

func (p *permissionEvaluator) MayCreate(user *models.User) bool {
	if user != nil {
		return true
	}
	return p.policy.GuestCreate
}
