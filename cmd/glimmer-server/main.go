// Command glimmer-server stores contact form submissions and serves the static page.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/glimmer/config"
	"github.com/lixenwraith/glimmer/contact"
	"github.com/lixenwraith/glimmer/service"
)

var (
	configFlag = flag.String("config", "", "TOML configuration file")
	envFlag    = flag.String("env", ".env", "dotenv file")
)

func main() {
	flag.Parse()
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	hub := service.NewHub()
	server := contact.NewServer(cfg.Addr(), cfg.Server.DataDir, cfg.Server.StaticDir)
	if err := hub.Register(server); err != nil {
		fmt.Fprintf(os.Stderr, "register: %v\n", err)
		os.Exit(1)
	}
	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "start: %v\n", err)
		os.Exit(1)
	}
	log.Printf("server running on http://%s", server.Addr())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Printf("shutting down")
	hub.StopAll()
}
