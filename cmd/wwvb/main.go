// Command wwvb synthesizes a continuous monophonic audio signal that
// impersonates the WWVB longwave time-code broadcast: an amplitude time
// code carrying a BPSK phase-modulation subcarrier, both emitted at one
// third the real 60kHz carrier frequency.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/ersatz-timecode/ersatz/internal/audiohost"
	"github.com/ersatz-timecode/ersatz/internal/cliutil"
	"github.com/ersatz-timecode/ersatz/internal/synth"
	"github.com/ersatz-timecode/ersatz/internal/wavetable"
)

const (
	versionMajor = 1
	versionMinor = 0

	sampleRate = 48000

	carrierFreq           = 60000.0 / 3
	wtSize                = 12
	lowAmplitudeAttenuate = 0.02
)

func main() {
	cliutil.ConfigureLogging()

	var help = pflag.BoolP("help", "h", false, "show this help message and exit")
	var version = pflag.BoolP("version", "v", false, "print version number and exit")

	opts := []cliutil.HelpOption{
		{Short: 'h', Long: "help", Help: "show this help message and exit"},
		{Short: 'v', Long: "version", Help: "print version number and exit"},
	}
	pflag.Usage = func() {
		cliutil.PrintHelp(os.Stderr, os.Args[0], "Simulate the WWVB longwave time-code broadcast over the default audio device.", opts)
	}
	pflag.CommandLine.SortFlags = false
	pflag.CommandLine.Init(os.Args[0], pflag.ContinueOnError)
	if err := pflag.CommandLine.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", os.Args[0], err)
		os.Exit(1)
	}

	if pflag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "%s: unrecognized argument %q\n", os.Args[0], pflag.Arg(0))
		os.Exit(1)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}
	if *version {
		fmt.Printf("ersatz-wwvb v%d.%d\n", versionMajor, versionMinor)
		os.Exit(0)
	}

	// WWVB's DST-transition bits are announced relative to the station's
	// own zone (US Mountain Time, where Fort Collins, CO sits).
	dstLoc, err := time.LoadLocation("America/Denver")
	if err != nil {
		log.Warn("could not load America/Denver zone, DST announcement bits will read as standard time", "error", err)
		dstLoc = time.UTC
	}

	params := wavetable.Params{CarrierFreq: carrierFreq, SampleRate: sampleRate, Size: wtSize}
	if !params.Continuous() {
		log.Fatal("wavetable size does not divide the carrier cycle evenly", "size", wtSize, "carrier", carrierFreq)
	}
	high, low := wavetable.PopulateInt16(params, lowAmplitudeAttenuate)

	now := time.Now()
	startSampleIndex := uint32(int64(now.Nanosecond()) * sampleRate / 1_000_000_000)
	stream := synth.NewWWVBStream(high, low, sampleRate, dstLoc, now.Unix(), startSampleIndex)

	player, err := audiohost.NewPlayer(sampleRate, audiohost.FormatSignedInt16LE, stream)
	if err != nil {
		log.Fatal("failed to open audio output", "error", err)
	}
	defer player.Close()

	log.Info("ersatz-wwvb starting", "version", fmt.Sprintf("%d.%d", versionMajor, versionMinor))
	player.Start()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-sigCh:
			log.Info("received shutdown signal, stopping stream")
			player.Stop()
			return
		case <-ticker.C:
			if !player.IsStarted() {
				log.Error("audio stream stopped unexpectedly")
				os.Exit(1)
			}
		}
	}
}
