package main

import (
	"fmt"
	"os"

	"github.com/annapetrenko/mealkeeper/internal/buildinfo"
	"github.com/annapetrenko/mealkeeper/internal/server"
	"github.com/annapetrenko/mealkeeper/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup error:", err)
		os.Exit(1)
	}

	app.Run()
}
