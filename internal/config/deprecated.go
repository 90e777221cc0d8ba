package config

import (
	"github.com/MKhiriev/go-rpush/internal/deprecation"
	"github.com/MKhiriev/go-rpush/internal/logger"
)

const (
	attrLogDir       = "log_dir="
	attrFeedbackPoll = "feedback_poll="
)

var deprecations = newDeprecations()

func newDeprecations() *deprecation.Registry {
	r := deprecation.NewRegistry(nil)
	r.Register(attrLogDir, "2.3.0", "Please use log_file instead.")
	r.Register(attrFeedbackPoll, "2.5.0", "Please use apns.feedback_receiver.frequency= instead.")

	return r
}

// SetDeprecationLogger routes deprecation warnings to log.
func SetDeprecationLogger(log *logger.Logger) {
	deprecations.SetLogger(log)
}
