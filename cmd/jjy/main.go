// Command jjy synthesizes a continuous monophonic audio signal that
// impersonates the JJY longwave time-code broadcast, amplitude-modulated
// at one third its real carrier frequency so a radio-controlled clock
// can recover it from the speaker's third harmonic.
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

	tokyoCarrierFreq      = 60000.0 / 3
	tokyoWTSize           = 12
	fukushimaCarrierFreq  = 40000.0 / 3
	fukushimaWTSize       = 18
	lowAmplitudeAttenuate = 0.1
)

func main() {
	cliutil.ConfigureLogging()

	var fukushima = pflag.BoolP("fukushima", "f", false, "simulate the 40kHz Fukushima transmitter instead of 60kHz Tokyo")
	var jst = pflag.BoolP("jst", "j", false, "force Japan Standard Time regardless of the system timezone")
	var help = pflag.BoolP("help", "h", false, "show this help message and exit")
	var version = pflag.BoolP("version", "v", false, "print version number and exit")

	opts := []cliutil.HelpOption{
		{Short: 'f', Long: "fukushima", Help: "simulate the 40kHz Fukushima transmitter instead of 60kHz Tokyo"},
		{Short: 'j', Long: "jst", Help: "force Japan Standard Time regardless of the system timezone"},
		{Short: 'h', Long: "help", Help: "show this help message and exit"},
		{Short: 'v', Long: "version", Help: "print version number and exit"},
	}
	pflag.Usage = func() {
		cliutil.PrintHelp(os.Stderr, os.Args[0], "Simulate the JJY longwave time-code broadcast over the default audio device.", opts)
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
		fmt.Printf("ersatz-jjy v%d.%d\n", versionMajor, versionMinor)
		os.Exit(0)
	}

	loc := time.Local
	if *jst {
		if tokyo, err := time.LoadLocation("Asia/Tokyo"); err == nil {
			loc = tokyo
		} else {
			log.Warn("could not load Asia/Tokyo zone, falling back to local time", "error", err)
		}
	}

	carrier := tokyoCarrierFreq
	wtSize := tokyoWTSize
	station := "Tokyo (60kHz)"
	if *fukushima {
		carrier = fukushimaCarrierFreq
		wtSize = fukushimaWTSize
		station = "Fukushima (40kHz)"
	}

	params := wavetable.Params{CarrierFreq: carrier, SampleRate: sampleRate, Size: wtSize}
	if !params.Continuous() {
		log.Fatal("wavetable size does not divide the carrier cycle evenly", "size", wtSize, "carrier", carrier)
	}
	high, low := wavetable.PopulateFloat32(params, lowAmplitudeAttenuate)

	now := time.Now()
	startSampleIndex := uint32(int64(now.Nanosecond()) * sampleRate / 1_000_000_000)
	stream := synth.NewJJYStream(high, low, sampleRate, loc, now.Unix(), startSampleIndex)

	player, err := audiohost.NewPlayer(sampleRate, audiohost.FormatFloat32LE, stream)
	if err != nil {
		log.Fatal("failed to open audio output", "error", err)
	}
	defer player.Close()

	log.Info("ersatz-jjy starting", "version", fmt.Sprintf("%d.%d", versionMajor, versionMinor), "station", station)
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
