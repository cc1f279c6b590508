package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPermitted(t *testing.T) {
	admin := &User{ID: 1, Role: RoleAdmin}
	moderator := &User{ID: 2, Role: RoleModerator}
	author := &User{ID: 3, Role: RoleUser}
	other := &User{ID: 4, Role: RoleUser}
	superuser := &User{ID: 5, Role: RoleUser, Superuser: true}

	tests := []struct {
		name     string
		actor    *User
		action   Action
		resource Resource
		authorID int64
		want     bool
	}{
		{"anonymous can read", AnonymousUser, ActionRead, ResourceReview, 3, true},
		{"anonymous cannot create review", AnonymousUser, ActionCreate, ResourceReview, 0, false},
		{"anonymous cannot modify catalogue", AnonymousUser, ActionModify, ResourceCatalogue, 0, false},
		{"nil actor can read", nil, ActionRead, ResourceCatalogue, 0, true},
		{"nil actor cannot mutate", nil, ActionModify, ResourceComment, 0, false},
		{"admin modifies catalogue", admin, ActionModify, ResourceCatalogue, 0, true},
		{"admin modifies users", admin, ActionModify, ResourceUser, 0, true},
		{"admin modifies another user's review", admin, ActionModify, ResourceReview, 3, true},
		{"superuser with plain role modifies catalogue", superuser, ActionModify, ResourceCatalogue, 0, true},
		{"superuser with plain role modifies users", superuser, ActionModify, ResourceUser, 0, true},
		{"moderator modifies another user's review", moderator, ActionModify, ResourceReview, 3, true},
		{"moderator modifies another user's comment", moderator, ActionModify, ResourceComment, 3, true},
		{"moderator cannot modify catalogue", moderator, ActionModify, ResourceCatalogue, 0, false},
		{"moderator cannot modify users", moderator, ActionModify, ResourceUser, 0, false},
		{"user creates review", author, ActionCreate, ResourceReview, 0, true},
		{"user creates comment", author, ActionCreate, ResourceComment, 0, true},
		{"author modifies own review", author, ActionModify, ResourceReview, author.ID, true},
		{"author modifies own comment", author, ActionModify, ResourceComment, author.ID, true},
		{"user cannot modify another user's review", other, ActionModify, ResourceReview, author.ID, false},
		{"user cannot modify another user's comment", other, ActionModify, ResourceComment, author.ID, false},
		{"user cannot create catalogue entries", author, ActionCreate, ResourceCatalogue, 0, false},
		{"user cannot modify users", author, ActionModify, ResourceUser, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Permitted(tt.actor, tt.action, tt.resource, tt.authorID)
			assert.Equal(t, tt.want, got)
		})
	}
}
