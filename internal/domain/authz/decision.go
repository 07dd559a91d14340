// Package authz decides whether a caller may perform an action on an event or geofence.
//
// Decisions are pure: callers load the facts (owner, collaborator list) and pass them in.
package authz

import (
	"slices"

	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/entity"
)

// Action names an operation guarded by a role and, for some actions, by resource membership.
type Action string

const (
	ActionCreateEvent      Action = "event.create"
	ActionUpdateEvent      Action = "event.update"
	ActionDeleteEvent      Action = "event.delete"
	ActionCollaborateEvent Action = "event.collaborate"
	ActionAttendEvent      Action = "event.attend"

	ActionCreateGeofence Action = "geofence.create"
	ActionReadGeofence   Action = "geofence.read"
	ActionUpdateGeofence Action = "geofence.update"
	ActionDeleteGeofence Action = "geofence.delete"
)

// DenyReason explains a denial. It is logged and returned as error details, never as a message.
type DenyReason string

const (
	ReasonRoleNotPermitted DenyReason = "role_not_permitted"
	ReasonNotOwner         DenyReason = "not_owner"
	ReasonNotCollaborator  DenyReason = "not_collaborator"
	ReasonUnknownAction    DenyReason = "unknown_action"
)

type resourceGate int

const (
	gateNone resourceGate = iota
	gateCollaborator
	gateOwner
)

type policy struct {
	role entity.Role
	gate resourceGate
}

//nolint:gochecknoglobals
var policies = map[Action]policy{
	ActionCreateEvent:      {role: entity.RoleOrganization, gate: gateNone},
	ActionUpdateEvent:      {role: entity.RoleOrganization, gate: gateCollaborator},
	ActionDeleteEvent:      {role: entity.RoleOrganization, gate: gateCollaborator},
	ActionCollaborateEvent: {role: entity.RoleOrganization, gate: gateNone},
	ActionAttendEvent:      {role: entity.RoleConsumer, gate: gateNone},

	ActionCreateGeofence: {role: entity.RoleConsumer, gate: gateNone},
	ActionReadGeofence:   {role: entity.RoleConsumer, gate: gateOwner},
	ActionUpdateGeofence: {role: entity.RoleConsumer, gate: gateOwner},
	ActionDeleteGeofence: {role: entity.RoleConsumer, gate: gateOwner},
}

// Request carries everything a decision depends on.
type Request struct {
	Caller          entity.Caller
	Action          Action
	ResourceOwnerID int64   // geofence owner; unused for event actions
	CollaboratorIDs []int64 // event collaborators; unused for geofence actions
}

// Decision is Allow or Deny(reason).
type Decision struct {
	Allowed bool
	Reason  DenyReason
}

// Allow is the positive decision.
func Allow() Decision {
	return Decision{Allowed: true}
}

// Deny is a negative decision with a reason.
func Deny(reason DenyReason) Decision {
	return Decision{Reason: reason}
}

// Err converts a denial to ErrForbidden with the reason as details.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}

	return domainerrors.ErrForbidden.WithDetails(string(d.Reason))
}

// Authorize applies the role gate then the resource gate for req.Action.
func Authorize(req Request) Decision {
	p, ok := policies[req.Action]
	if !ok {
		return Deny(ReasonUnknownAction)
	}

	if req.Caller.Role != p.role {
		return Deny(ReasonRoleNotPermitted)
	}

	switch p.gate {
	case gateCollaborator:
		if !slices.Contains(req.CollaboratorIDs, req.Caller.UserID) {
			return Deny(ReasonNotCollaborator)
		}
	case gateOwner:
		if req.ResourceOwnerID != req.Caller.UserID {
			return Deny(ReasonNotOwner)
		}
	case gateNone:
	}

	return Allow()
}
