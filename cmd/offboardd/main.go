package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/magic428/px4-offboard-interface/pkg/autopilot"
	"github.com/magic428/px4-offboard-interface/pkg/groundlink"
	"github.com/magic428/px4-offboard-interface/pkg/run"
	"github.com/magic428/px4-offboard-interface/pkg/transport"
)

var (
	serialPort = "/dev/ttyUSB0"
	baudRate   = 57600
	tcpAddr    = ""
	wsURL      = ""
	mqttURL    = ""
	vehicleID  = "uav-0"

	systemID     uint
	autopilotID  uint
	streamPeriod time.Duration
)

func init() {
	if val := os.Getenv("OFFBOARD_MQTT_URL"); val != "" {
		mqttURL = val
	}
	flag.StringVar(&serialPort, "port", serialPort, "Serial device of the flight controller.")
	flag.IntVar(&baudRate, "baud", baudRate, "Serial baud rate.")
	flag.StringVar(&tcpAddr, "addr", tcpAddr, "TCP address of a simulated flight controller, overrides -port.")
	flag.StringVar(&wsURL, "ws", wsURL, "WebSocket URL of the flight controller link, overrides -addr.")
	flag.StringVar(&mqttURL, "mqtt", mqttURL, "MQTT broker URL for the ground link, empty disables it.")
	flag.StringVar(&vehicleID, "vehicle-id", vehicleID, "Vehicle identifier on the ground link.")
	flag.UintVar(&systemID, "system-id", 0, "Remote system id, 0 learns it from traffic.")
	flag.UintVar(&autopilotID, "autopilot-id", 0, "Remote autopilot component id, 0 learns it from traffic.")
	flag.DurationVar(&streamPeriod, "stream-period", autopilot.DefaultStreamPeriod, "Setpoint streaming period.")
}

func openTransport() (*transport.Stream, error) {
	switch {
	case wsURL != "":
		return transport.DialWebSocket(wsURL)
	case tcpAddr != "":
		return transport.Dial("tcp", tcpAddr)
	default:
		return transport.OpenSerial(serialPort, baudRate)
	}
}

func main() {
	flag.Parse()
	defer glog.Flush()

	tr, err := openTransport()
	if err != nil {
		glog.Exitf("open flight controller link: %v", err)
	}
	defer tr.Close()

	ap := autopilot.New(autopilot.Config{
		Transport:    tr,
		SystemID:     uint8(systemID),
		AutopilotID:  uint8(autopilotID),
		StreamPeriod: streamPeriod,
	})

	runner := run.NewRunner().HandleSignals()

	if err := ap.Start(runner.Context); err != nil {
		glog.Exitf("start autopilot interface: %v", err)
	}
	sys, apID, local := ap.Identifiers()
	fmt.Printf("connected to system %d autopilot %d as component %d\n", sys, apID, local)

	if mqttURL != "" {
		q, err := groundlink.NewQueueFromURL(mqttURL)
		if err != nil {
			glog.Exitf("ground link: %v", err)
		}
		if err := q.Connect(); err != nil {
			glog.Exitf("ground link connect: %v", err)
		}
		defer q.Close()
		runner.Go(groundlink.NewBridge(q, ap, vehicleID))
	}

	<-runner.Context.Done()

	// Hand control back before the setpoint stream goes silent.
	ap.DisableOffboardControl()
	if err := ap.Stop(); err != nil {
		glog.Warningf("shutdown: %v", err)
	}
	if err := runner.Wait(); err != nil {
		glog.Error(err)
	}
}
