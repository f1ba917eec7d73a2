package discord

import (
	"context"
)

// grantReason lands in the guild audit log next to every role grant.
const grantReason = "verification"

// RoleGate adapts the REST client to the verification service's view of the
// verified role: a readable/grantable boolean per user.
type RoleGate struct {
	client  *Client
	guildID string
	roleID  string
}

// NewRoleGate creates a role gate for one guild and role.
func NewRoleGate(client *Client, guildID, roleID string) *RoleGate {
	return &RoleGate{
		client:  client,
		guildID: guildID,
		roleID:  roleID,
	}
}

// HasRole reports whether the user already holds the verified role.
func (g *RoleGate) HasRole(ctx context.Context, userID string) (bool, error) {
	member, err := g.client.GetGuildMember(ctx, g.guildID, userID)
	if err != nil {
		return false, err
	}
	for _, role := range member.Roles {
		if role == g.roleID {
			return true, nil
		}
	}
	return false, nil
}

// GrantRole grants the verified role. Granting a role the user already holds
// is harmless, which keeps the success path idempotent across retries.
func (g *RoleGate) GrantRole(ctx context.Context, userID string) error {
	return g.client.AddMemberRole(ctx, g.guildID, userID, g.roleID, grantReason)
}
