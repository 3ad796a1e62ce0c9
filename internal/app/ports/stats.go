package ports

import (
	"wordscan/internal/app/adapters/stats"
	"wordscan/internal/app/domain/scanner"
)

type StatsPort interface {
	AddScan(sum scanner.Summary)
	Snapshot() stats.Snapshot
}
