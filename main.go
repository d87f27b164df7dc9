package main

import (
	"fmt"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/router"
	"finance-tracker/internal/util"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// .env is optional; FT_* variables override config.yaml
	_ = godotenv.Load()

	cfg, err := config.Load("config.yaml")
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logrus.New()
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	// a missing JWT secret gets an ephemeral one: tokens then die with
	// the process, which is safe but inconvenient
	if cfg.JWT.Secret == "" {
		secret, err := util.RandomString(48)
		if err != nil {
			log.Fatalf("generate jwt secret: %v", err)
		}
		cfg.JWT.Secret = secret
		log.Warn("jwt.secret not configured, generated an ephemeral secret")
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	r := router.Setup(cfg, db, log)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Infof("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
