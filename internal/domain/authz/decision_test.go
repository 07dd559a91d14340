package authz

import (
	"testing"

	domainerrors "geoalert/internal/domain/errors"
	"geoalert/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func org(id int64) entity.Caller {
	return entity.Caller{UserID: id, Role: entity.RoleOrganization}
}

func consumer(id int64) entity.Caller {
	return entity.Caller{UserID: id, Role: entity.RoleConsumer}
}

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want Decision
	}{
		{
			name: "organization creates event",
			req:  Request{Caller: org(1), Action: ActionCreateEvent},
			want: Allow(),
		},
		{
			name: "consumer cannot create event",
			req:  Request{Caller: consumer(1), Action: ActionCreateEvent},
			want: Deny(ReasonRoleNotPermitted),
		},
		{
			name: "collaborator updates event",
			req:  Request{Caller: org(2), Action: ActionUpdateEvent, CollaboratorIDs: []int64{1, 2}},
			want: Allow(),
		},
		{
			name: "non-collaborator organization cannot delete event",
			req:  Request{Caller: org(3), Action: ActionDeleteEvent, CollaboratorIDs: []int64{1, 2}},
			want: Deny(ReasonNotCollaborator),
		},
		{
			name: "empty collaborator list denies",
			req:  Request{Caller: org(1), Action: ActionUpdateEvent},
			want: Deny(ReasonNotCollaborator),
		},
		{
			name: "consumer collaborator is still gated by role",
			req:  Request{Caller: consumer(1), Action: ActionUpdateEvent, CollaboratorIDs: []int64{1}},
			want: Deny(ReasonRoleNotPermitted),
		},
		{
			name: "consumer attends event",
			req:  Request{Caller: consumer(5), Action: ActionAttendEvent},
			want: Allow(),
		},
		{
			name: "organization cannot attend",
			req:  Request{Caller: org(5), Action: ActionAttendEvent},
			want: Deny(ReasonRoleNotPermitted),
		},
		{
			name: "unknown action",
			req:  Request{Caller: org(1), Action: Action("event.launch")},
			want: Deny(ReasonUnknownAction),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Authorize(tt.req))
		})
	}
}

func TestAuthorize_GeofenceOwnerSymmetry(t *testing.T) {
	const owner, other int64 = 10, 11

	for _, action := range []Action{ActionUpdateGeofence, ActionDeleteGeofence, ActionReadGeofence} {
		t.Run(string(action), func(t *testing.T) {
			assert.Equal(t, Allow(), Authorize(Request{Caller: consumer(owner), Action: action, ResourceOwnerID: owner}))
			assert.Equal(t, Deny(ReasonNotOwner), Authorize(Request{Caller: consumer(other), Action: action, ResourceOwnerID: owner}))
		})
	}
}

func TestDecisionErr(t *testing.T) {
	assert.NoError(t, Allow().Err())

	err := Deny(ReasonNotOwner).Err()
	assert.True(t, domainerrors.Is(err, domainerrors.ErrForbidden))
	assert.Equal(t, string(ReasonNotOwner), domainerrors.FromError(err).Details())
}
