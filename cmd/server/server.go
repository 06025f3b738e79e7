package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"

	"github.com/zucenko/trucxanh/model"
	"github.com/zucenko/trucxanh/server"
)

type Server struct {
	router     *way.Router
	GameServer *server.GameServer
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()
	if lvl, err := log.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(lvl)
	}

	restartKey, err := model.ParseKey(getEnv("RESTART_KEY", "R"))
	if err != nil {
		log.Fatal(err)
	}

	s := Server{
		GameServer: server.NewGameServer(model.DefaultLayout(), restartKey),
	}
	go s.GameServer.Loop()
	s.routes()
	port := getEnv("PORT", "8080")
	log.Printf("listening on port %s", port)
	log.Fatalln(http.ListenAndServe(":"+port, s.router))
}
