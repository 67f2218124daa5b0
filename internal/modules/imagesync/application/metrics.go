package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	framesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framesync_frames_total",
		Help: "Frames processed by image sync, by outcome.",
	}, []string{"status"})

	pagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "framesync_pages_total",
		Help: "Pages processed by image sync, by outcome.",
	}, []string{"result"})
)
