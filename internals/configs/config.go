package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Kebijakan rotasi tag & absensi (bisa dioverride lewat ENV)
	TagWriteCooldownDays int           // minimal jarak antar rotasi tag per user
	PendingTagTTL        time.Duration // umur baris pending sebelum dianggap hangus
	AllowSelfCheckin     bool          // member biasa boleh check-in dirinya sendiri?
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}

	TagWriteCooldownDays = GetEnvInt("TAG_WRITE_COOLDOWN_DAYS", 30)
	PendingTagTTL = time.Duration(GetEnvInt("PENDING_TAG_TTL_MINUTES", 5)) * time.Minute
	AllowSelfCheckin = GetEnvBool("ALLOW_SELF_CHECKIN", true)

	log.Printf("✅ Kebijakan absensi: cooldown=%d hari, pending TTL=%s, self check-in=%v",
		TagWriteCooldownDays, PendingTagTTL, AllowSelfCheckin)
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

func GetEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %d", key, v, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("⚠️ %s tidak valid (%q), pakai default %v", key, v, def)
		return def
	}
	return b
}
