package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SignupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainbox_signups_total",
		Help: "Accounts successfully created.",
	})

	SigninsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainbox_signins_total",
		Help: "Successful credential exchanges for a bearer token.",
	})

	ContentCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "brainbox_content_created_total",
		Help: "Content items saved.",
	})

	ShareLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "brainbox_share_lookups_total",
		Help: "Public share hash lookups.",
	}, []string{"result"})
)
