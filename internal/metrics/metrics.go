package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// GamesStarted - количество начатых игр
	GamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_place_games_started_total",
		Help: "Number of started case games.",
	})

	// GamesFinished - количество завершенных игр по исходу:
	// offer - принято предложение банкира, case - вскрыт финальный кейс
	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "puzzle_place_games_finished_total",
		Help: "Number of finished case games by outcome.",
	}, []string{"outcome"})

	// BankerOffers - количество рассчитанных предложений банкира
	BankerOffers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "puzzle_place_banker_offers_total",
		Help: "Number of computed banker offers.",
	})
)

const (
	OutcomeOffer = "offer"
	OutcomeCase  = "case"
)
