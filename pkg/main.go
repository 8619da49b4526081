package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/plumeworks/plume/pkg/internal"
	"github.com/fatih/color"

	"github.com/plumeworks/plume/pkg/internal/cache"
	"github.com/plumeworks/plume/pkg/internal/database"
	"github.com/plumeworks/plume/pkg/internal/seed"
	"github.com/plumeworks/plume/pkg/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" ____  _\n|  _ \\| |_   _ _ __ ___   ___\n| |_) | | | | | '_ ` _ \\ / _ \\\n|  __/| | |_| | | | | | |  __/\n|_|   |_|\\__,_|_| |_| |_|\\___|"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Plume"), pkg.AppVersion)
	fmt.Printf("The client-side social blogging demo\n")
	color.HiBlack("=====================================================\n")

	// Configure settings
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")

	// Load settings
	if err := viper.ReadInConfig(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Prepare the in-process cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when setting up cache.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Seed the demo dataset when the store is empty
	if err := seed.SeedDatabase(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when seeding the demo dataset.")
	}

	// Restore the signed-in profile, if any
	if session, err := services.LoadSession(); err != nil {
		log.Error().Err(err).Msg("An error occurred when loading the session.")
	} else if user, err := session.CurrentUser(); err == nil && user != nil {
		log.Info().Str("username", user.Username).Msg("Resumed the signed-in profile.")
	} else {
		log.Info().Msg("No profile signed in.")
	}

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.Start()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
}
