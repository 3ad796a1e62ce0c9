package config

import "time"

const (
	DefaultMaxWordLen = 32
	DefaultMaxWords   = 32767
)

func (m *Manager) GetDefault() *Config {
	return Default()
}

func Default() *Config {
	return &Config{
		App: App{
			LogLevel: "info",
			GinMode:  "release",
		},
		Log: Log{
			File:       "logs/wordscan.log",
			MaxSizeMB:  64,
			MaxBackups: 8,
			MaxAgeDays: 30,
			Compress:   true,
		},
		Limits: Limits{
			MaxWordLen: DefaultMaxWordLen,
			MaxWords:   DefaultMaxWords,
		},
		Files: Files{
			Dictionary: "wds.txt",
			Text:       "read_file.txt",
			Nodes:      "ptn.dat",
			Lengths:    "lens.dat",
		},
		Server: Server{
			Addr:         ":8080",
			MaxTextBytes: 16 << 20,
			Limiter: Limiter{
				Requests: 20,
				Per:      time.Second,
			},
		},
		Cache: Cache{
			Capacity: 16,
			TTL:      30 * time.Minute,
		},
		Dictionaries: make(map[string]string),
	}
}
