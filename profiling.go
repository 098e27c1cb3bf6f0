package main

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"
)

// cpuProfile records a pprof CPU profile for the whole viewer session.
type cpuProfile struct {
	path    string
	file    *os.File
	started time.Time
	stopped bool
}

// startCPUProfile opens path and starts sampling. Stop must be called before
// the process exits or the profile is truncated.
func startCPUProfile(path string) (*cpuProfile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("start CPU profile: %w", err)
	}
	log.Printf("Writing CPU profile to %s", path)
	return &cpuProfile{path: path, file: f, started: time.Now()}, nil
}

// Stop flushes the profile. It is safe to call on a nil profile and more
// than once.
func (p *cpuProfile) Stop() {
	if p == nil || p.stopped {
		return
	}
	p.stopped = true
	pprof.StopCPUProfile()
	if err := p.file.Close(); err != nil {
		log.Printf("CPU profile %s: %v", p.path, err)
		return
	}
	log.Printf("CPU profile %s covers %s", p.path, time.Since(p.started).Round(time.Second))
}
