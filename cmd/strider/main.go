package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/teslashibe/go-strider/internal/log"
	"github.com/teslashibe/go-strider/pkg/energy"
	"github.com/teslashibe/go-strider/pkg/kinematics"
	"github.com/teslashibe/go-strider/pkg/legged"
	"github.com/teslashibe/go-strider/pkg/robot"
)

func main() {
	// Command line flags
	name := flag.String("name", "Scout-1", "Robot name")
	legs := flag.Int("legs", 4, "Leg count (even, >= 2)")
	source := flag.String("source", "electric", "Energy source: solar, electric, fossil_fuel")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	log.Init(*logLevel)

	mobility, err := legged.NewMobility(*legs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid leg count: %v\n", err)
		os.Exit(1)
	}

	src, err := energy.ParseSource(*source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid energy source: %v\n", err)
		os.Exit(1)
	}

	r, err := robot.New(robot.Config{
		Name:     *name,
		Source:   src,
		Capacity: 100,
	}, mobility)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create robot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("🤖 %s: %d-legged (%s), speed factor %.1f\n",
		r.Name(), mobility.Legs(), mobility.Gait(), mobility.SpeedFactor())
	printStatus(r)

	// An inactive robot refuses to move
	must(r.Move(kinematics.Forward, 5))

	r.Activate()

	// A short scripted mission: out, strafe, turn around, come back
	must(r.Move(kinematics.Forward, 5))
	must(r.Move(kinematics.Right, 2))
	must(r.Rotate(math.Pi))
	must(r.Move(kinematics.Forward, 5))
	r.Stop()
	printStatus(r)

	r.Recharge()
	printStatus(r)
}

func printStatus(r *robot.Robot) {
	snap := r.Snapshot()
	fmt.Printf("   position (%.2f, %.2f)  heading %.2f°  energy %.2f/%.0f  active %v\n",
		snap.X, snap.Y, snap.Orientation*180/math.Pi, snap.Energy, snap.Capacity, snap.Active)
}

func must(executed bool, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "command failed: %v\n", err)
		os.Exit(1)
	}
	if !executed {
		fmt.Println("   (robot is inactive, command skipped)")
	}
}
