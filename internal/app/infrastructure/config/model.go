package config

import "time"

type Config struct {
	App          App               `json:"app"`
	Log          Log               `json:"log"`
	Limits       Limits            `json:"limits"`
	Files        Files             `json:"files"`
	Server       Server            `json:"server"`
	Cache        Cache             `json:"cache"`
	Dictionaries map[string]string `json:"dictionaries"` // ключ - имя словаря для /v1/scan/:dict, значение - путь к файлу
}

type App struct {
	LogLevel  string `json:"log_level"`
	GinMode   string `json:"gin_mode"`
	AuthToken string `json:"auth_token"`
}

type Log struct {
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
	Compress   bool   `json:"compress"`
}

type Limits struct {
	MaxWordLen int  `json:"max_word_len"` // максимальная длина слова в байтах
	MaxWords   int  `json:"max_words"`    // максимальное кол-во слов в словаре
	Sort       bool `json:"sort"`         // пересортировать словарь вместо ошибки
}

type Files struct {
	Dictionary string `json:"dictionary"`
	Text       string `json:"text"`
	Nodes      string `json:"nodes"`
	Lengths    string `json:"lengths"`
}

type Server struct {
	Addr         string  `json:"addr"`
	MaxTextBytes int64   `json:"max_text_bytes"`
	Limiter      Limiter `json:"limiter"`
}

type Limiter struct {
	Requests int           `json:"requests"` // сколько запросов
	Per      time.Duration `json:"per"`      // за какое время
}

type Cache struct {
	Capacity int           `json:"capacity"`
	TTL      time.Duration `json:"ttl"`
}
