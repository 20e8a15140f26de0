// Command engine is the UCI entrypoint: parse flags, optionally run perft
// or an EPD test suite and exit, otherwise start the UCI read loop over
// stdin/stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/profile"

	"github.com/Alex7342/BitboatdChessEngine/internal/config"
	"github.com/Alex7342/BitboatdChessEngine/internal/elog"
	"github.com/Alex7342/BitboatdChessEngine/internal/movegen"
	"github.com/Alex7342/BitboatdChessEngine/internal/position"
	"github.com/Alex7342/BitboatdChessEngine/internal/testsuite"
	"github.com/Alex7342/BitboatdChessEngine/internal/uci"
)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "log level\n(critical|error|warning|notice|info|debug)")
	perft := flag.Int("perft", 0, "run perft to the given depth on -fen (or the start position) and exit")
	divide := flag.Bool("divide", false, "with -perft, also print the leaf count under each root move")
	fen := flag.String("fen", position.StartFEN, "fen to use with -perft or -testsuite")
	testSuite := flag.String("testsuite", "", "path to an EPD test suite file")
	testMoveTime := flag.Int("testtime", 2000, "search time per test position in milliseconds")
	testDepth := flag.Int("testdepth", 0, "search depth limit per test position, if >0")
	profileRun := flag.Bool("profile", false, "wrap the run in CPU profiling, writing a profile to the working directory")
	flag.Parse()

	if *profileRun {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	config.LoadFile(*configFile)
	if lvl, err := logging.LogLevel(*logLvl); err == nil {
		elog.SetLevel(lvl)
	}

	if *perft != 0 {
		p := &position.Position{}
		if err := p.LoadFEN(*fen); err != nil {
			fmt.Fprintf(os.Stderr, "bad -fen %q: %v\n", *fen, err)
			os.Exit(1)
		}
		for d := 1; d <= *perft; d++ {
			start := time.Now()
			nodes := movegen.Perft(p, d)
			fmt.Printf("perft(%d) = %d  (%s)\n", d, nodes, time.Since(start))
		}
		if *divide {
			for move, nodes := range movegen.PerftDivide(p, *perft) {
				fmt.Printf("%s: %d\n", move, nodes)
			}
		}
		return
	}

	if *testSuite != "" {
		suite, err := testsuite.Load(*testSuite)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		suite.Run(time.Duration(*testMoveTime)*time.Millisecond, *testDepth)
		return
	}

	uci.NewHandler(os.Stdin, os.Stdout).Loop()
}
