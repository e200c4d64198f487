package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/teslashibe/go-strider/pkg/protocol"
)

func main() {
	// Command line flags
	url := flag.String("url", "ws://localhost:8090/ws/telemetry", "Telemetry websocket URL")
	flag.Parse()

	conn, _, err := websocket.DefaultDialer.Dial(*url, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to %s: %v\n", *url, err)
		os.Exit(1)
	}
	defer conn.Close()

	fmt.Printf("📡 Watching telemetry at %s\n", *url)

	// Close the connection on interrupt; the read loop unblocks with an
	// error and the process exits.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Println("connection closed")
			return
		}

		msg, err := protocol.ParseMessage(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad message: %v\n", err)
			continue
		}
		printMessage(msg)
	}
}

func printMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.TypeMoved:
		var d protocol.MoveData
		if err := msg.ParseData(&d); err != nil {
			return
		}
		fmt.Printf("[moved]     %-12s %s %.2f → (%.2f, %.2f) energy %.2f\n",
			d.Name, d.Direction, d.Distance, d.X, d.Y, d.Energy)

	case protocol.TypeRotated:
		var d protocol.RotateData
		if err := msg.ParseData(&d); err != nil {
			return
		}
		fmt.Printf("[rotated]   %-12s by %.2f rad → heading %.2f energy %.2f\n",
			d.Name, d.Angle, d.Orientation, d.Energy)

	case protocol.TypeStopped, protocol.TypeRecharged, protocol.TypeState:
		var d protocol.StateData
		if err := msg.ParseData(&d); err != nil {
			return
		}
		fmt.Printf("[%-9s] %-12s (%.2f, %.2f) energy %.2f/%.0f active %v\n",
			msg.Type, d.Name, d.X, d.Y, d.Energy, d.Capacity, d.Active)

	default:
		fmt.Printf("[%s]\n", msg.Type)
	}
}
