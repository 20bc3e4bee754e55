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

import "github.com/sumitmcc/webexteamssdk/pkg/jsondata"

const (
	// RoomTypeGroup marks a room holding a group conversation.
	RoomTypeGroup = "group"
	// RoomTypeDirect marks a 1:1 room.
	RoomTypeDirect = "direct"
)

// Room is a read view over a room resource payload.
type Room struct {
	*jsondata.Object
}

// NewRoom builds a Room from JSON object text or a native mapping.
func NewRoom(input any) (*Room, error) {
	obj, err := jsondata.New(input, jsondata.WithTypeName("Room"))
	if err != nil {
		return nil, err
	}
	return &Room{Object: obj}, nil
}

// GetID returns the room's unique ID.
func (r *Room) GetID() string {
	return r.StringField("id")
}

// GetTitle returns the user-friendly name for the room.
func (r *Room) GetTitle() string {
	return r.StringField("title")
}

// GetType returns the room type, group or direct.
func (r *Room) GetType() string {
	return r.StringField("type")
}

// GetIsLocked reports whether the room is moderated.
func (r *Room) GetIsLocked() bool {
	return r.BoolField("isLocked")
}

// GetTeamID returns the ID of the team the room belongs to, if any.
func (r *Room) GetTeamID() string {
	return r.StringField("teamId")
}

// GetCreatorID returns the ID of the person who created the room.
func (r *Room) GetCreatorID() string {
	return r.StringField("creatorId")
}

// GetCreated returns the creation date and time in ISO8601 format.
func (r *Room) GetCreated() string {
	return r.StringField("created")
}

// GetLastActivity returns the date and time of the room's last activity.
func (r *Room) GetLastActivity() string {
	return r.StringField("lastActivity")
}
