// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package activerecord implements the SQL client backend. Notifications of
// all four services live in the single rpush_notifications table and are
// told apart by its type column.
package activerecord

import (
	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/models"
)

// Table is the notifications table managed by the migrations.
const Table = "rpush_notifications"

// New is the [client.Factory] for the SQL backend.
func New() (*client.Backend, error) {
	return &client.Backend{
		Name: client.ActiveRecord,
		Types: client.MessageTypes{
			Apns: messageType(models.Apns, func() models.Notification { return &models.ApnsNotification{} }),
			Gcm:  messageType(models.Gcm, func() models.Notification { return &models.GcmNotification{} }),
			Wpns: messageType(models.Wpns, func() models.Notification { return &models.WpnsNotification{} }),
			Adm:  messageType(models.Adm, func() models.Notification { return &models.AdmNotification{} }),
		},
	}, nil
}

func messageType(s models.Service, n func() models.Notification) client.MessageType {
	return client.MessageType{Service: s, Key: string(s), New: n}
}
