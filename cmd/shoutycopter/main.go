package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/shoutybird/config"
	"github.com/automoto/shoutybird/core"
)

func main() {
	interval := flag.Duration("interval", config.C.TickInterval, "Simulation tick interval")
	duration := flag.Duration("duration", 0, "Stop after this long (0 = run until interrupted)")
	report := flag.Uint64("report", 50, "Log telemetry every N ticks (0 = never)")
	flag.Parse()

	copter := core.NewCopter(nil)
	loop := core.NewGameLoop(copter, *interval)
	if *report > 0 {
		// Runs on the loop goroutine, between ticks
		loop.OnTick = func(tick uint64) {
			if tick%*report != 0 {
				return
			}
			craft := copter.Craft()
			log.Printf("t=%.2fs pos=(%.3f, %.3f) vel=(%.3f, %.3f) dv=%.4f dp=%.4f jumps=%d",
				copter.ElapsedMs()/1000,
				craft.Position().X, craft.Position().Y,
				craft.Velocity().X, craft.Velocity().Y,
				copter.DeltaVelocity().Y, copter.DeltaPosition().Y,
				copter.Jumps())
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if *duration > 0 {
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down copter...")
		loop.Stop()
	}()

	// Every line on stdin is a jump
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			copter.Jump()
		}
	}()

	log.Printf("ShoutyCopter running (tick %v); press enter to jump", loop.Interval())
	start := time.Now()
	loop.Run(ctx)

	stats := loop.Stats()
	log.Printf("Ran %d ticks (%d skipped) in %v, simulated %.2fs",
		stats.Ticks, stats.Skipped, time.Since(start).Round(time.Millisecond), copter.ElapsedMs()/1000)
}
