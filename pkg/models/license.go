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

// License is a read view over a license resource payload.
type License struct {
	*jsondata.Object
}

// NewLicense builds a License from JSON object text or a native mapping.
func NewLicense(input any) (*License, error) {
	obj, err := jsondata.New(input, jsondata.WithTypeName("License"))
	if err != nil {
		return nil, err
	}
	return &License{Object: obj}, nil
}

// GetID returns the unique ID for the license.
func (l *License) GetID() string {
	return l.StringField("id")
}

// GetName returns the name of the license.
func (l *License) GetName() string {
	return l.StringField("name")
}

// GetTotalUnits returns the total number of license units.
func (l *License) GetTotalUnits() int {
	return l.IntField("totalUnits")
}

// GetConsumedUnits returns the number of license units consumed.
func (l *License) GetConsumedUnits() int {
	return l.IntField("consumedUnits")
}
