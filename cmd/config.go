package cmd

import "time"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	AmqpURL           string
	RedisAddr         string
	RedisPassword     string
	CacheTTL          time.Duration
	RefundSchedule    string
	RefundGracePeriod time.Duration
}
