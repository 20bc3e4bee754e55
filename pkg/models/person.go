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

// Person is a read view over a person resource payload.
type Person struct {
	*jsondata.Object
}

// NewPerson builds a Person from JSON object text or a native mapping.
func NewPerson(input any) (*Person, error) {
	obj, err := jsondata.New(input, jsondata.WithTypeName("Person"))
	if err != nil {
		return nil, err
	}
	return &Person{Object: obj}, nil
}

// GetID returns the person's unique ID.
func (p *Person) GetID() string {
	return p.StringField("id")
}

// GetEmails returns the email addresses of the person.
func (p *Person) GetEmails() []string {
	return p.StringSliceField("emails")
}

// GetDisplayName returns the full name of the person.
func (p *Person) GetDisplayName() string {
	return p.StringField("displayName")
}

// GetNickName returns the nickname of the person, if configured.
func (p *Person) GetNickName() string {
	return p.StringField("nickName")
}

// GetFirstName returns the first name of the person.
func (p *Person) GetFirstName() string {
	return p.StringField("firstName")
}

// GetLastName returns the last name of the person.
func (p *Person) GetLastName() string {
	return p.StringField("lastName")
}

// GetAvatar returns the URL to the person's avatar.
func (p *Person) GetAvatar() string {
	return p.StringField("avatar")
}

// GetOrgID returns the ID of the organization the person belongs to.
func (p *Person) GetOrgID() string {
	return p.StringField("orgId")
}

// GetType returns the type of the account, for example person or bot.
func (p *Person) GetType() string {
	return p.StringField("type")
}

// GetStatus returns the current presence status of the person.
func (p *Person) GetStatus() string {
	return p.StringField("status")
}

// GetCreated returns the date and time the person was created, in ISO8601
// format.
func (p *Person) GetCreated() string {
	return p.StringField("created")
}
