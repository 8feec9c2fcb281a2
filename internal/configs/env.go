package configs

import "os"

var Envs = struct {
	PORT            string
	FRONTEND_ORIGIN string
	GIN_MODE        string
	WORDS_FILE      string
}{
	PORT:            getenv("PORT", "5000"),
	FRONTEND_ORIGIN: os.Getenv("FRONTEND_ORIGIN"),
	GIN_MODE:        os.Getenv("GIN_MODE"),
	WORDS_FILE:      getenv("WORDS_FILE", "./words.txt"),
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
