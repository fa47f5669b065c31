package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultPort    = "3000"
	defaultDBHost  = "cluster0.wfpeu.mongodb.net"
	defaultDBName  = "productsDB"
	localMongoURI  = "mongodb://localhost:27017"
	defaultOrigins = "http://localhost:5173,http://localhost:5174"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	CORSOrigins []string
}

// LoadEnv reads a .env file when one is present. A missing file is not an error.
func LoadEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load env file: %v", err)
	}
}

func Load() *Config {
	origins := splitList(GetEnv("CORS_ORIGINS", defaultOrigins))
	if len(origins) == 0 {
		origins = splitList(defaultOrigins)
	}

	return &Config{
		Port:        GetEnv("PORT", defaultPort),
		MongoURI:    mongoURI(),
		DBName:      GetEnv("DB_NAME", defaultDBName),
		CORSOrigins: origins,
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// mongoURI prefers MONGO_URI, then an Atlas URI built from DB_USER and DB_PASSWORD.
func mongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	user, pass := os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD")
	if user == "" || pass == "" {
		return localMongoURI
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		user, pass, GetEnv("DB_HOST", defaultDBHost))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
