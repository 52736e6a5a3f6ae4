package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/meshcast/meshcast/device"
	"github.com/meshcast/meshcast/mesh"
	"github.com/meshcast/meshcast/mesh/impl"
	"github.com/meshcast/meshcast/table"
)

func main() {
	app := &cli.App{
		Name:  "meshcast",
		Usage: "announce the local multicast listeners of an interface to the mesh",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "interface",
				Aliases: []string{"i"},
				Value:   "eth0",
				Usage:   "mesh interface to collect listeners from",
			},
			&cli.DurationFlag{
				Name:  "refresh-interval",
				Value: time.Second * 2,
				Usage: "period of the listener refresh worker",
			},
			&cli.BoolFlag{
				Name:  "bridge-snooping",
				Usage: "also collect listeners from the bridge snooping database",
			},
			&cli.BoolFlag{
				Name:  "group-awareness",
				Value: true,
				Usage: "announce multicast group listeners",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log at debug level",
			},
		},
		Action: run,
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := zerolog.InfoLevel
	if c.Bool("debug") {
		level = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).With().Timestamp().Logger()

	registry := device.NewRegistry()

	dev, err := device.FromSystem(c.String("interface"))
	if err != nil {
		return err
	}
	registry.Add(dev)

	conf := mesh.Configuration{
		Table:           table.NewLocal(logger),
		Topology:        registry,
		GroupAwareness:  c.Bool("group-awareness"),
		RefreshInterval: c.Duration("refresh-interval"),
		Logger:          logger,
	}
	if c.Bool("bridge-snooping") {
		conf.Snooper = device.NewSnoopDB(registry)
	}

	node := impl.NewMulticast(conf)
	node.SetPrimaryInterface(dev)

	err = node.Start()
	if err != nil {
		return err
	}

	// Run a first cycle right away instead of waiting a full interval
	node.RefreshListeners()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	err = node.WriteLocalListeners(os.Stdout)
	if err != nil {
		logger.Warn().Err(err).Msg("can't write the listener report")
	}

	return node.Stop()
}
