// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Service identifies the delivery protocol a notification is sent through.
type Service string

const (
	// Apns is the Apple Push Notification service.
	Apns Service = "apns"
	// Gcm is Google Cloud Messaging.
	Gcm Service = "gcm"
	// Wpns is the Windows Push Notification Service.
	Wpns Service = "wpns"
	// Adm is Amazon Device Messaging.
	Adm Service = "adm"
)

// Services lists every supported delivery protocol in a stable order.
func Services() []Service {
	return []Service{Apns, Gcm, Wpns, Adm}
}

// Notification is implemented by every message type a client backend
// supplies.
type Notification interface {
	Service() Service
	Validate() error
}

// Base holds the fields shared by all notification types.
type Base struct {
	ID           int64          `json:"id"`
	AppName      string         `json:"app_name"`
	Priority     int            `json:"priority"`
	DeliverAfter *time.Time     `json:"deliver_after,omitempty"`
	Delivered    bool           `json:"delivered"`
	Failed       bool           `json:"failed"`
	Data         map[string]any `json:"data,omitempty"`
}

func (b *Base) rules() []*validation.FieldRules {
	return []*validation.FieldRules{
		validation.Field(&b.AppName, validation.Required),
		validation.Field(&b.Priority, validation.Min(0)),
	}
}

// ApnsNotification is an iOS/macOS push message.
type ApnsNotification struct {
	Base
	DeviceToken string `json:"device_token"`
	Alert       string `json:"alert,omitempty"`
	Badge       *int   `json:"badge,omitempty"`
	Sound       string `json:"sound,omitempty"`
}

func (n *ApnsNotification) Service() Service { return Apns }

func (n *ApnsNotification) Validate() error {
	return validation.ValidateStruct(n, append(n.rules(),
		validation.Field(&n.DeviceToken, validation.Required, is.Hexadecimal, validation.Length(64, 64)),
		validation.Field(&n.Badge, validation.Min(0)),
	)...)
}

// GcmNotification is an Android push message.
type GcmNotification struct {
	Base
	RegistrationIDs []string `json:"registration_ids"`
	CollapseKey     string   `json:"collapse_key,omitempty"`
}

func (n *GcmNotification) Service() Service { return Gcm }

func (n *GcmNotification) Validate() error {
	return validation.ValidateStruct(n, append(n.rules(),
		validation.Field(&n.RegistrationIDs, validation.Required, validation.Length(1, 1000)),
	)...)
}

// WpnsNotification is a Windows Phone push message.
type WpnsNotification struct {
	Base
	URI string `json:"uri"`
}

func (n *WpnsNotification) Service() Service { return Wpns }

func (n *WpnsNotification) Validate() error {
	return validation.ValidateStruct(n, append(n.rules(),
		validation.Field(&n.URI, validation.Required, is.URL),
	)...)
}

// AdmNotification is a Kindle push message.
type AdmNotification struct {
	Base
	RegistrationIDs []string `json:"registration_ids"`
}

func (n *AdmNotification) Service() Service { return Adm }

func (n *AdmNotification) Validate() error {
	return validation.ValidateStruct(n, append(n.rules(),
		validation.Field(&n.RegistrationIDs, validation.Required, validation.Length(1, 100)),
	)...)
}
