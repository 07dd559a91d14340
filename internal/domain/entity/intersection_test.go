package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeByEmail(t *testing.T) {
	tests := []struct {
		name    string
		input   []IntersectionMatch
		wantIDs []int64
	}{
		{
			name:    "empty input",
			input:   nil,
			wantIDs: []int64{},
		},
		{
			name: "same owner through two geofences keeps the first",
			input: []IntersectionMatch{
				{GeofenceID: 1, OwnerEmail: "alice@example.com"},
				{GeofenceID: 2, OwnerEmail: "alice@example.com"},
			},
			wantIDs: []int64{1},
		},
		{
			name: "case and whitespace do not make a new recipient",
			input: []IntersectionMatch{
				{GeofenceID: 3, OwnerEmail: " Bob@Example.com"},
				{GeofenceID: 4, OwnerEmail: "alice@example.com"},
				{GeofenceID: 5, OwnerEmail: "bob@example.com "},
			},
			wantIDs: []int64{3, 4},
		},
		{
			name: "distinct emails keep input order",
			input: []IntersectionMatch{
				{GeofenceID: 9, OwnerEmail: "c@example.com"},
				{GeofenceID: 8, OwnerEmail: "b@example.com"},
				{GeofenceID: 7, OwnerEmail: "a@example.com"},
			},
			wantIDs: []int64{9, 8, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DedupeByEmail(tt.input)

			ids := make([]int64, 0, len(got))
			for _, m := range got {
				ids = append(ids, m.GeofenceID)
			}
			assert.Equal(t, tt.wantIDs, ids)

			assert.Equal(t, got, DedupeByEmail(got), "deduplication is idempotent")
		})
	}
}

func TestNoticeFromMatch(t *testing.T) {
	n := NoticeFromMatch(IntersectionMatch{
		EventID:        11,
		EventName:      "Food Fair",
		OwnerID:        4,
		OwnerEmail:     "alice@example.com",
		OwnerFirstName: "Alice",
		GeofenceName:   "Home",
	})

	assert.Equal(t, Notice{
		EventID:      11,
		EventName:    "Food Fair",
		RecipientID:  4,
		Email:        "alice@example.com",
		FirstName:    "Alice",
		GeofenceName: "Home",
	}, n)
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleOrganization, RoleFromString("organization"))
	assert.Equal(t, RoleConsumer, RoleFromString("consumer"))
	assert.Equal(t, RoleConsumer, RoleFromString("admin"))
	assert.False(t, Role("merchant").IsValid())
}
