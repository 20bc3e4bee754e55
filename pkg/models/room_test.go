/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomAccessors(t *testing.T) {
	room, err := NewRoom(`{
		"id": "r1",
		"title": "Project Unicorn",
		"type": "group",
		"isLocked": true,
		"teamId": "t1",
		"creatorId": "p1",
		"created": "2024-06-01T12:00:00.000Z",
		"lastActivity": "2024-06-02T08:30:00.000Z"
	}`)
	assert.Nil(t, err)

	assert.Equal(t, "r1", room.GetID())
	assert.Equal(t, "Project Unicorn", room.GetTitle())
	assert.Equal(t, RoomTypeGroup, room.GetType())
	assert.True(t, room.GetIsLocked())
	assert.Equal(t, "t1", room.GetTeamID())
	assert.Equal(t, "p1", room.GetCreatorID())
	assert.Equal(t, "2024-06-01T12:00:00.000Z", room.GetCreated())
	assert.Equal(t, "2024-06-02T08:30:00.000Z", room.GetLastActivity())
}

func TestRoomDefaults(t *testing.T) {
	room, err := NewRoom(`{"id": "r2", "type": "direct"}`)
	assert.Nil(t, err)

	assert.Equal(t, RoomTypeDirect, room.GetType())
	assert.False(t, room.GetIsLocked())
	assert.Equal(t, "", room.GetTeamID())
}

func TestPersonAccessors(t *testing.T) {
	person, err := NewPerson(`{
		"id": "p1",
		"emails": ["jdoe@example.com", "jdoe@backup.example.com"],
		"displayName": "John Doe",
		"nickName": "John",
		"firstName": "John",
		"lastName": "Doe",
		"avatar": "https://example.com/avatar.png",
		"orgId": "o1",
		"type": "person",
		"status": "active",
		"created": "2024-06-01T12:00:00.000Z"
	}`)
	assert.Nil(t, err)

	assert.Equal(t, "p1", person.GetID())
	assert.Equal(t, []string{"jdoe@example.com", "jdoe@backup.example.com"}, person.GetEmails())
	assert.Equal(t, "John Doe", person.GetDisplayName())
	assert.Equal(t, "John", person.GetNickName())
	assert.Equal(t, "John", person.GetFirstName())
	assert.Equal(t, "Doe", person.GetLastName())
	assert.Equal(t, "https://example.com/avatar.png", person.GetAvatar())
	assert.Equal(t, "o1", person.GetOrgID())
	assert.Equal(t, "person", person.GetType())
	assert.Equal(t, "active", person.GetStatus())
	assert.Equal(t, "2024-06-01T12:00:00.000Z", person.GetCreated())
}

func TestPersonMissingEmails(t *testing.T) {
	person, err := NewPerson(`{"id": "p2"}`)
	assert.Nil(t, err)
	assert.Nil(t, person.GetEmails())
}
