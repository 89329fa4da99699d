package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	cli "github.com/spf13/pflag"

	"github.com/lmittmann/tint"
	log "log/slog"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"kaju/internal/assistant"
	"kaju/internal/audio"
	"kaju/internal/brain"
	"kaju/internal/config"
	"kaju/internal/dispatch"
	"kaju/internal/intent"
	"kaju/internal/ipc"
	"kaju/internal/notify"
	"kaju/internal/proxy"
	"kaju/internal/speech"
	"kaju/internal/tts"
)

var logLevelMap = map[string]log.Level{
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	envFile := cli.StringP("env", "e", ".env", "Env file path")
	cfgFile := cli.StringP("config", "c", "", "Config file path")
	proxyAddr := cli.StringP("proxy", "p", "", "SOCKS proxy address")
	mode := cli.StringP("mode", "m", "", "Recognizer mode: online, offline, auto (overrides config)")
	logLevel := cli.StringP("log", "l", "", "Log level (overrides config)")
	cli.Parse()

	godotenv.Load(*envFile)

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Error("Failed to load config", "err", err)
		os.Exit(1)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}

	level := cfg.Logging.Level
	if *logLevel != "" {
		level = *logLevel
	}
	log.SetDefault(log.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: logLevelMap[level],
	})))

	log.Info("Booting up")

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Error("OPENAI_API_KEY not set")
		os.Exit(1)
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if *proxyAddr != "" {
		var httpClient *http.Client
		httpClient, err = proxy.NewSocksClient(*proxyAddr)
		if err != nil {
			log.Error("Failed to dial socks proxy", "proxy", *proxyAddr, "err", err)
			os.Exit(1)
		}
		opts = append(opts, option.WithHTTPClient(httpClient))
		log.Debug("Loaded proxy")
	}
	client := openai.NewClient(opts...)

	rec := audio.NewRecorder()
	if err := rec.Init(); err != nil {
		log.Error("Failed to init audio", "err", err)
		os.Exit(1)
	}
	defer rec.Close()

	log.Debug("Loaded recorder")

	var offline speech.Recognizer
	if cfg.Mode != string(speech.ModeOnline) {
		whisper, err := speech.NewOfflineRecognizer(cfg.Speech.WhisperModel, cfg.Speech.Language)
		if err != nil {
			if cfg.Mode == string(speech.ModeOffline) {
				log.Error("Failed to init whisper", "err", err)
				os.Exit(1)
			}
			log.Warn("Local recognizer unavailable, staying online-only", "err", err)
		} else {
			defer whisper.Close()
			offline = whisper
			log.Debug("Loaded whisper")
		}
	}

	online := speech.NewOnlineRecognizer(client, openai.AudioModel(cfg.Speech.OnlineModel))
	listener := speech.NewListener(rec, online, offline, speech.Mode(cfg.Mode))

	speak := func(text string) {
		log.Info("Speaking", "text", text)
		if err := tts.Speak(text); err != nil {
			log.Error("Failed to voice out", "err", err)
		}
	}

	handlers := dispatch.NewHandlers(dispatch.ExecSystem{}, speak, dispatch.Options{
		Apps:       cfg.Apps,
		Contacts:   cfg.Contacts,
		ProfileURL: cfg.Links.Profile,
		MusicURL:   cfg.Links.Music,
	})
	classifier := intent.NewClassifier(intent.Links{
		Repository:  cfg.Links.Repository,
		Project:     cfg.Links.Project,
		ProjectName: cfg.Links.ProjectName,
	})
	chat := brain.New(client, openai.ChatModel(cfg.Chat.Model))
	asst := assistant.New(classifier, dispatch.NewDispatcher(handlers), chat, speak)

	// Typed utterances arrive over the control socket and take priority
	// over the microphone on the next loop turn.
	typed := make(chan string, 4)
	if err := ipc.StartServer(func(msg ipc.ControlMessage) {
		switch msg.Cmd {
		case "utter":
			typed <- msg.Text
		case "quit":
			typed <- "exit"
		default:
			log.Warn("Unknown command", "cmd", msg.Cmd)
		}
	}); err != nil {
		log.Error("Failed ipc server", "err", err)
		os.Exit(1)
	}

	ducker := audio.NewDucker(cfg.Speech.DuckFactor)

	next := func(ctx context.Context) (string, error) {
		select {
		case text := <-typed:
			return text, nil
		default:
		}

		if err := notify.Chime(cfg.Chime); err != nil {
			log.Debug("No listen chime", "err", err)
		}
		if err := ducker.Duck(ctx); err != nil {
			log.Debug("Ducking unavailable", "err", err)
		}

		log.Info("Listening")
		text, err := listener.Listen(ctx)

		if rerr := ducker.Restore(ctx); rerr != nil {
			log.Debug("Restore after ducking failed", "err", rerr)
		}
		return text, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Boot up - successful")
	asst.Run(ctx, next)
}
