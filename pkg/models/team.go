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

// Package models exposes typed read views over JSON payloads returned by the
// Webex Teams API. Each resource wraps a jsondata.Object: the declared Get*
// accessors never fail and return the zero value when a key is absent, while
// the promoted GetField reports missing keys as errors.
package models

import "github.com/sumitmcc/webexteamssdk/pkg/jsondata"

// Team is a read view over a team resource payload.
type Team struct {
	*jsondata.Object
}

// NewTeam builds a Team from JSON object text or a native mapping.
func NewTeam(input any) (*Team, error) {
	obj, err := jsondata.New(input, jsondata.WithTypeName("Team"))
	if err != nil {
		return nil, err
	}
	return &Team{Object: obj}, nil
}

// GetID returns the team's unique ID.
func (t *Team) GetID() string {
	return t.StringField("id")
}

// GetName returns the user-friendly name for the team.
func (t *Team) GetName() string {
	return t.StringField("name")
}

// GetCreated returns the date and time the team was created, in ISO8601
// format.
func (t *Team) GetCreated() string {
	return t.StringField("created")
}

// GetCreatorID returns the ID of the person who created the team.
func (t *Team) GetCreatorID() string {
	return t.StringField("creatorId")
}
