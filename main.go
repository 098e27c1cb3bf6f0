package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	flag.Parse()
	if *logFileFlag != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    logFileMaxSizeMB, // megabytes
			MaxBackups: logFileMaxBackups,
		})
	}

	var profile *cpuProfile
	if *cpuProfileFlag != "" {
		var err error
		if profile, err = startCPUProfile(*cpuProfileFlag); err != nil {
			log.Fatalf("CPU profile: %v", err)
		}
	}

	g, err := newGame()
	if err != nil {
		profile.Stop()
		log.Fatalf("Viewer initialization failed: %v", err)
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Point Sheet")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(defaultTPS)
	err = ebiten.RunGame(g)
	g.Close()
	profile.Stop()
	if err != nil {
		log.Fatalf("Render loop failed: %v", err)
	}
}
