package client_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/models"
)

func fullTypes(prefix string) client.MessageTypes {
	mt := func(s models.Service, n func() models.Notification) client.MessageType {
		return client.MessageType{Service: s, Key: prefix + string(s), New: n}
	}

	return client.MessageTypes{
		Apns: mt(models.Apns, func() models.Notification { return &models.ApnsNotification{} }),
		Gcm:  mt(models.Gcm, func() models.Notification { return &models.GcmNotification{} }),
		Wpns: mt(models.Wpns, func() models.Notification { return &models.WpnsNotification{} }),
		Adm:  mt(models.Adm, func() models.Notification { return &models.AdmNotification{} }),
	}
}

var _ = Describe("Registry", func() {
	var (
		registry *client.Registry
		loads    int
	)

	BeforeEach(func() {
		loads = 0
		registry = client.NewRegistry(map[client.Identifier]client.Factory{
			"memory": func() (*client.Backend, error) {
				loads++
				return &client.Backend{Types: fullTypes("mem:")}, nil
			},
		})
	})

	Describe("Resolve", func() {
		It("loads the registered backend and names it after its identifier", func() {
			backend, err := registry.Resolve("memory")

			Expect(err).NotTo(HaveOccurred())
			Expect(backend.Name).To(Equal(client.Identifier("memory")))
			Expect(backend.Types.Apns.Key).To(Equal("mem:apns"))
			Expect(loads).To(Equal(1))
		})

		It("reports unknown identifiers as load errors", func() {
			backend, err := registry.Resolve("carrier-pigeon")

			Expect(backend).To(BeNil())
			Expect(err).To(MatchError(client.ErrUnknownBackend))
			Expect(err.Error()).To(ContainSubstring("carrier-pigeon"))
		})

		It("propagates factory failures unchanged", func() {
			boom := errors.New("boom")
			registry.Register("broken", func() (*client.Backend, error) { return nil, boom })

			_, err := registry.Resolve("broken")

			Expect(errors.Is(err, boom)).To(BeTrue())
		})

		It("rejects a backend missing a message type", func() {
			registry.Register("partial", func() (*client.Backend, error) {
				types := fullTypes("p:")
				types.Wpns = client.MessageType{}
				return &client.Backend{Types: types}, nil
			})

			_, err := registry.Resolve("partial")

			Expect(err).To(MatchError(client.ErrIncompleteBackend))
			Expect(err.Error()).To(ContainSubstring("wpns"))
		})

		It("rejects a factory returning no backend", func() {
			registry.Register("empty", func() (*client.Backend, error) { return nil, nil })

			_, err := registry.Resolve("empty")

			Expect(err).To(MatchError(client.ErrIncompleteBackend))
		})
	})

	Describe("Identifiers", func() {
		It("enumerates registered backends in order", func() {
			registry.Register("alpha", func() (*client.Backend, error) { return nil, nil })

			Expect(registry.Identifiers()).To(Equal([]client.Identifier{"alpha", "memory"}))
		})
	})
})

var _ = Describe("MessageTypes", func() {
	It("looks up each service binding", func() {
		types := fullTypes("k:")

		for _, s := range models.Services() {
			mt, ok := types.Lookup(s)
			Expect(ok).To(BeTrue())
			Expect(mt.Service).To(Equal(s))
			Expect(mt.New().Service()).To(Equal(s))
		}
	})

	It("does not find unknown services", func() {
		_, ok := fullTypes("k:").Lookup("pager")
		Expect(ok).To(BeFalse())
	})
})
