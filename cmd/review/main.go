package main

import (
	"context"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/auth"
	"github.com/airenas/revy/internal/pkg/dictionary"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/review"
	"github.com/airenas/revy/internal/pkg/seed"
	"github.com/airenas/revy/internal/pkg/service"
	"github.com/airenas/revy/internal/pkg/statusservice"
	"github.com/airenas/revy/internal/pkg/store"
	"github.com/airenas/revy/internal/pkg/transcriber"
	"github.com/airenas/revy/internal/pkg/upload"
	"github.com/airenas/revy/internal/pkg/utils"
	"github.com/facebookgo/clock"
	"github.com/labstack/gommon/color"
	"github.com/spf13/viper"
)

func main() {
	goapp.StartWithDefault()

	printBanner()

	cfg := goapp.Config
	setDefaults(cfg)
	go func() {
		if err := utils.RunPerfEndpoint(cfg.GetInt("debug.port")); err != nil {
			goapp.Log.Error().Err(err).Msg("pprof endpoint failed")
		}
	}()

	data := &service.Data{}
	data.Port = cfg.GetInt("port")
	data.DefaultUser = cfg.GetString("user.default")

	cl := clock.New()
	var files []*persistence.FileRecord
	var terms []*persistence.DictionaryTerm
	if cfg.GetBool("seed.mock") {
		files, terms = seed.Files(cl.Now()), seed.Terms()
		goapp.Log.Info().Int("files", len(files)).Int("terms", len(terms)).Msg("loaded mock data")
	}

	dispatcher, err := statusservice.NewDispatcher(cfg.GetInt("status.queueSize"), cfg.GetInt("status.workerCount"))
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init status dispatcher")
	}
	fs, err := store.NewFileStore(store.Options{ProcessingDelay: cfg.GetDuration("processing.delay"),
		Clock: cl, Notifier: dispatcher}, files)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init file store")
	}
	data.Files = fs

	maker, err := upload.NewMaker(upload.Options{Clock: cl, DateFormat: cfg.GetString("upload.dateFormat"),
		Transcriber: transcriber.NewSimulated(seed.SampleTranscript()).Transcribe})
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init record maker")
	}
	data.Maker = maker

	data.Wizards, err = review.NewManager(fs, maker, review.Options{Clock: cl,
		ProcessingGate: cfg.GetDuration("wizard.processingGate"),
		CacheSize:      cfg.GetInt("wizard.cacheSize"), TTL: cfg.GetDuration("wizard.ttl")})
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init wizards")
	}

	data.Dictionary, err = dictionary.NewStore(terms, cfg.GetInt("dictionary.pageSize"))
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't init dictionary")
	}
	data.Sessions = auth.NewKeeper(seed.User())

	wsh := statusservice.NewWSConnKeeper(cfg.GetDuration("status.wsTimeout"))
	data.Status = &statusservice.Data{Files: fs, WSHandler: wsh}

	hData := &statusservice.HandlerData{Dispatcher: dispatcher, Files: fs, WSHandler: wsh}
	goapp.Log.Info().Msg("starting status handler")
	ctx, cancelFunc := context.WithCancel(context.Background())
	doneCh, err := statusservice.StartStatusHandler(ctx, hData)
	if err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't start status handler")
	}

	goapp.Log.Info().Msg("starting web service")
	if err := service.StartWebServer(data); err != nil {
		goapp.Log.Fatal().Err(err).Msg("can't start web server")
	}
	goapp.Log.Info().Msg("exit web service")
	cancelFunc()
	select {
	case <-doneCh:
		goapp.Log.Info().Msg("All code returned. Now exit. Bye")
	case <-time.After(time.Second * 15):
		goapp.Log.Warn().Msg("Timeout gracefull shutdown")
	}
}

func setDefaults(cfg *viper.Viper) {
	cfg.SetDefault("port", 8000)
	cfg.SetDefault("processing.delay", 5*time.Second)
	cfg.SetDefault("wizard.processingGate", 500*time.Millisecond)
	cfg.SetDefault("wizard.cacheSize", 1000)
	cfg.SetDefault("wizard.ttl", 2*time.Hour)
	cfg.SetDefault("dictionary.pageSize", 8)
	cfg.SetDefault("upload.dateFormat", "2006/01/02")
	cfg.SetDefault("user.default", seed.User().Name)
	cfg.SetDefault("seed.mock", true)
	cfg.SetDefault("status.workerCount", 2)
	cfg.SetDefault("status.queueSize", 100)
	cfg.SetDefault("status.wsTimeout", 30*time.Minute)
}

var (
	version = "DEV"
)

func printBanner() {
	banner := `
    ____  _______    ____  __
   / __ \/ ____/ |  / /\ \/ /
  / /_/ / __/  | | / /  \  / 
 / _, _/ /___  | |/ /   / /  
/_/ |_/_____/  |___/   /_/   v: %s

%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("https://github.com/airenas/revy"))
}
