package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AutomataBuilt - сколько раз автомат собран из словаря или загружен из дампа.
	AutomataBuilt = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordscan_automata_built_total",
			Help: "Total number of automata compiled from a dictionary or loaded from dumps",
		},
		[]string{"source"},
	)

	// BuildDuration - время сборки автомата.
	BuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordscan_build_duration_seconds",
			Help:    "Time to compile or load an automaton",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16),
		},
	)

	// AutomatonNodes - кол-во узлов в автомате по словарям.
	AutomatonNodes = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wordscan_automaton_nodes",
			Help: "Number of nodes in the automaton per dictionary",
		},
		[]string{"dictionary"},
	)

	// ScansTotal - кол-во сканирований по словарям.
	ScansTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordscan_scans_total",
			Help: "Total number of scans per dictionary",
		},
		[]string{"dictionary"},
	)

	// ScanDuration - время сканирования текста.
	ScanDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wordscan_scan_duration_seconds",
			Help:    "Time to scan one text",
			Buckets: prometheus.ExponentialBuckets(0.00005, 2, 20),
		},
	)

	// HitsTotal - кол-во найденных слов по словарям.
	HitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordscan_hits_total",
			Help: "Total number of dictionary words found per dictionary",
		},
		[]string{"dictionary"},
	)

	// ScannedBytes - объём просканированного текста.
	ScannedBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordscan_scanned_bytes_total",
			Help: "Total number of text bytes scanned per dictionary",
		},
		[]string{"dictionary"},
	)

	// CachedAutomata - сколько автоматов сейчас в кэше.
	CachedAutomata = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wordscan_cached_automata",
		Help: "Number of automata held in the dictionary cache",
	})
)
