package config

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Defaults of the APNs feedback receiver.
const (
	DefaultFeedbackFrequency = 60
	DefaultFeedbackEnabled   = true
)

// ApnsFeedbackReceiverConfiguration controls polling of the APNs feedback
// service.
type ApnsFeedbackReceiverConfiguration struct {
	// Frequency is the polling interval in seconds.
	Frequency int `json:"frequency"`
	// Enabled turns feedback polling on.
	Enabled bool `json:"enabled"`
}

// NewApnsFeedbackReceiverConfiguration returns the receiver defaults.
func NewApnsFeedbackReceiverConfiguration() ApnsFeedbackReceiverConfiguration {
	return ApnsFeedbackReceiverConfiguration{
		Frequency: DefaultFeedbackFrequency,
		Enabled:   DefaultFeedbackEnabled,
	}
}

// Validate implements validation.Validatable.
func (f ApnsFeedbackReceiverConfiguration) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Frequency, validation.Required, validation.Min(1)),
	)
}

// ApnsConfiguration holds APNs-specific settings.
type ApnsConfiguration struct {
	FeedbackReceiver ApnsFeedbackReceiverConfiguration `json:"feedback_receiver"`
}

// NewApnsConfiguration returns APNs defaults, including a fully populated
// feedback receiver.
func NewApnsConfiguration() ApnsConfiguration {
	return ApnsConfiguration{
		FeedbackReceiver: NewApnsFeedbackReceiverConfiguration(),
	}
}

// Validate implements validation.Validatable.
func (a ApnsConfiguration) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.FeedbackReceiver),
	)
}

func (a *ApnsConfiguration) update(other ApnsOptions) {
	if other.FeedbackReceiver.Frequency != nil {
		a.FeedbackReceiver.Frequency = *other.FeedbackReceiver.Frequency
	}
	if other.FeedbackReceiver.Enabled != nil {
		a.FeedbackReceiver.Enabled = *other.FeedbackReceiver.Enabled
	}
}
