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
	// OwnedByOrg marks a webhook receiving events visible to anyone in the
	// organization.
	OwnedByOrg = "org"
	// OwnedByCreator marks a webhook receiving only events accessible to its
	// creator.
	OwnedByCreator = "creator"

	// StatusActive marks a webhook that is delivering events.
	StatusActive = "active"
	// StatusDisabled marks a webhook whose target URL could not be reached.
	StatusDisabled = "disabled"
)

// Webhook is a read view over a webhook resource payload.
type Webhook struct {
	*jsondata.Object
}

// NewWebhook builds a Webhook from JSON object text or a native mapping.
func NewWebhook(input any) (*Webhook, error) {
	obj, err := jsondata.New(input, jsondata.WithTypeName("Webhook"))
	if err != nil {
		return nil, err
	}
	return &Webhook{Object: obj}, nil
}

// GetID returns the webhook's unique ID.
func (w *Webhook) GetID() string {
	return w.StringField("id")
}

// GetName returns the user-friendly name for the webhook.
func (w *Webhook) GetName() string {
	return w.StringField("name")
}

// GetTargetURL returns the URL that receives POST requests for each event.
func (w *Webhook) GetTargetURL() string {
	return w.StringField("targetUrl")
}

// GetResource returns the resource type the webhook is monitoring.
func (w *Webhook) GetResource() string {
	return w.StringField("resource")
}

// GetEvent returns the event type the webhook is monitoring.
func (w *Webhook) GetEvent() string {
	return w.StringField("event")
}

// GetFilter returns the filter that defines the webhook scope.
func (w *Webhook) GetFilter() string {
	return w.StringField("filter")
}

// GetSecret returns the secret used to generate the payload signature.
func (w *Webhook) GetSecret() string {
	return w.StringField("secret")
}

// GetOrgID returns the ID of the organization that owns the webhook.
func (w *Webhook) GetOrgID() string {
	return w.StringField("orgId")
}

// GetCreatedBy returns the ID of the person that added the webhook.
func (w *Webhook) GetCreatedBy() string {
	return w.StringField("createdBy")
}

// GetAppID identifies the application that added the webhook.
func (w *Webhook) GetAppID() string {
	return w.StringField("appId")
}

// GetOwnedBy indicates whether the webhook is owned by the org or the
// creator.
func (w *Webhook) GetOwnedBy() string {
	return w.StringField("ownedBy")
}

// GetStatus indicates whether the webhook is active or disabled.
func (w *Webhook) GetStatus() string {
	return w.StringField("status")
}

// GetCreated returns the creation date and time in ISO8601 format.
func (w *Webhook) GetCreated() string {
	return w.StringField("created")
}
