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

	"github.com/sumitmcc/webexteamssdk/pkg/jsondata"
)

func TestTeamAccessors(t *testing.T) {
	team, err := NewTeam(`{
		"id": "t1",
		"name": "Data Platform",
		"created": "2024-06-01T12:00:00.000Z",
		"creatorId": "p1"
	}`)
	assert.Nil(t, err)

	assert.Equal(t, "t1", team.GetID())
	assert.Equal(t, "Data Platform", team.GetName())
	assert.Equal(t, "2024-06-01T12:00:00.000Z", team.GetCreated())
	assert.Equal(t, "p1", team.GetCreatorID())
}

func TestTeamAccessorsOnMissingKeys(t *testing.T) {
	team, err := NewTeam(`{"id": "t1"}`)
	assert.Nil(t, err)

	// declared accessors never fail, absent keys give the zero value
	assert.Equal(t, "", team.GetName())
	assert.Equal(t, "", team.GetCreated())
	assert.Equal(t, "", team.GetCreatorID())

	// while the generic path reports the missing key
	_, err = team.GetField("name")
	assert.ErrorIs(t, err, jsondata.ErrFieldNotFound)
}

func TestTeamFromMap(t *testing.T) {
	team, err := NewTeam(map[string]any{"id": "t2", "name": "Infra"})
	assert.Nil(t, err)
	assert.Equal(t, "t2", team.GetID())
	assert.Equal(t, "Infra", team.GetName())
}

func TestTeamRejectsInvalidInput(t *testing.T) {
	team, err := NewTeam(`["not", "an", "object"]`)
	assert.Nil(t, team)
	assert.ErrorIs(t, err, jsondata.ErrInvalidDataType)
}

func TestTeamStringForms(t *testing.T) {
	team, err := NewTeam(`{"id": "t1"}`)
	assert.Nil(t, err)

	assert.Equal(t, "Team:\n{\n  \"id\": \"t1\"\n}", team.String())
	assert.Equal(t, `Team("{\"id\":\"t1\"}")`, team.GoString())
}
