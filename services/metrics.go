package services

import "github.com/prometheus/client_golang/prometheus"

var (
	streakOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "divya_streak_outcomes_total",
			Help: "Streak advance attempts by outcome",
		},
		[]string{"outcome"},
	)
	chatResponses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "divya_chat_responses_total",
			Help: "Chat answers by source (model or fallback)",
		},
		[]string{"source"},
	)
)

// Collectors returns the domain metrics for registration alongside the HTTP ones.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{streakOutcomes, chatResponses}
}
