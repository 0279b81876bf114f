// ABOUTME: Entry point for the playback test tool
// ABOUTME: Parses CLI flags and runs a playback session
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quarrycraft/quarrycraft-go/internal/app"
	"github.com/quarrycraft/quarrycraft-go/internal/version"
)

var (
	soundPath = flag.String("sound", "", "WAV sound effect to play (default: synthesized tone)")
	musicPath = flag.String("music", "", "MP3 track to stream alongside the effects")
	volume    = flag.Int("volume", 100, "Playback volume 0-100")
	rate      = flag.Int("rate", 100, "Playback rate percent, 100 = normal speed")
	repeat    = flag.Int("repeat", 3, "How many times to fire the sound effect")
	interval  = flag.Duration("interval", 300*time.Millisecond, "Delay between effect plays")
	toneFreq  = flag.Float64("tone-freq", 440, "Synthesized tone frequency in Hz")
	logFile   = flag.String("log-file", "", "Also write logs to this file")
)

func main() {
	flag.Parse()

	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(io.MultiWriter(os.Stdout, f))
	}

	log.Printf("Starting %s %s", version.Product, version.Version)

	session := app.New(app.Config{
		SoundPath: *soundPath,
		MusicPath: *musicPath,
		Volume:    *volume,
		Rate:      *rate,
		Repeat:    *repeat,
		ToneFreq:  *toneFreq,
		Interval:  *interval,
	})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Printf("Shutdown signal received")
		session.Stop()
	}()

	if err := session.Start(); err != nil {
		log.Fatalf("Playback failed: %v", err)
	}
	log.Printf("Playback finished")
}
