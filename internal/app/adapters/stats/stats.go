package stats

import (
	"fmt"
	"github.com/shirou/gopsutil/cpu"
	"runtime"
	"sync"
	"time"
	"wordscan/internal/app/domain/scanner"
)

type Stats struct {
	startTime time.Time

	mu         sync.Mutex
	scans      int
	hits       int
	chars      int
	scanTime   time.Duration
	lastScanAt time.Time
}

type Snapshot struct {
	Uptime     time.Duration `json:"uptime"`
	CPUPercent float64       `json:"cpu_percent"`
	MemMB      uint64        `json:"mem_mb"`
	Scans      int           `json:"scans"`
	Hits       int           `json:"hits"`
	Chars      int           `json:"chars"`
	ScanTime   time.Duration `json:"scan_time"`
	LastScanAt time.Time     `json:"last_scan_at"`
}

func New() *Stats {
	return &Stats{startTime: time.Now()}
}

func (s *Stats) AddScan(sum scanner.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.scans++
	s.hits += sum.Hits
	s.chars += sum.Chars
	s.scanTime += sum.Elapsed
	s.lastScanAt = time.Now()
}

func (s *Stats) Snapshot() Snapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	percent, _ := cpu.Percent(0, false)
	if len(percent) == 0 {
		percent = append(percent, 0)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Uptime:     time.Since(s.startTime),
		CPUPercent: percent[0],
		MemMB:      m.Sys / 1024 / 1024,
		Scans:      s.scans,
		Hits:       s.hits,
		Chars:      s.chars,
		ScanTime:   s.scanTime,
		LastScanAt: s.lastScanAt,
	}
}

func (snap Snapshot) String() string {
	return fmt.Sprintf("uptime %v • CPU %.2f%% • RAM %v MB • scans %d • hits %d • chars %d",
		snap.Uptime.Truncate(time.Second), snap.CPUPercent, snap.MemMB, snap.Scans, snap.Hits, snap.Chars)
}
