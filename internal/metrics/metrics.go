package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PasswordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strongpass_passwords_generated_total",
			Help: "Total number of passwords generated, by strength label",
		},
		[]string{"label"},
	)

	GenerateErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strongpass_generate_errors_total",
			Help: "Total number of rejected generation requests",
		},
		[]string{"reason"},
	)

	StrengthChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "strongpass_strength_checks_total",
			Help: "Total number of strength checks, by strength label",
		},
		[]string{"label"},
	)

	PasswordLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "strongpass_password_length",
			Help:    "Length of generated passwords",
			Buckets: []float64{4, 8, 12, 16, 20, 32, 64, 128},
		},
	)
)
