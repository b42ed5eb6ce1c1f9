package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/ai"
	"github.com/oomph-ac/locomotion/player"
	"github.com/oomph-ac/locomotion/settings"
	"github.com/oomph-ac/locomotion/simulation"
	"github.com/oomph-ac/locomotion/trigger"
	"github.com/sirupsen/logrus"
)

// The following program walks a couple of scripted players through a small level containing a ladder,
// a cutscene and a pit, while a guard patrols nearby.
func main() {
	path := "config.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	if os.Getenv("DEBUG") != "" {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := settings.SaveDefault(path); err != nil {
		logger.Fatalf("unable to save default config: %v", err)
	}
	s, err := settings.Load(path)
	if err != nil {
		logger.Fatalf("unable to load config: %v", err)
	}

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         s.Sentry.DSN,
			Environment: s.Sentry.Environment,
		}); err != nil {
			logger.Fatalf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	runner := simulation.NewRunner(logger, s.Simulation.FixedStep, s.Simulation.MaxFrameTime)
	runner.SetTriggers(level(logger))

	floor := func(mgl32.Vec3) (float32, bool) { return 0, true }
	players := make([]*scripted, 0, 2)
	for i, script := range [][]step{climber(), wanderer()} {
		p := player.New(fmt.Sprintf("player-%d", i), logger, s)
		p.SetFloor(floor)
		player.Register(p)
		runner.Add(p)
		players = append(players, &scripted{p: p, script: script})
	}

	// The guard reads a snapshot of its target taken between frames, since both are ticked in parallel.
	target := players[1].p
	var seen mgl32.Vec3
	var visible bool
	observe := func() {
		seen, visible = target.Position(), !target.Dead()
	}
	observe()
	guard := ai.New("guard", logger, ai.DefaultSettings(), mgl32.Vec3{6, 0, 6},
		[]mgl32.Vec3{{6, 0, 6}, {6, 0, 12}, {12, 0, 12}},
		func() (mgl32.Vec3, bool) { return seen, visible },
	)
	runner.Add(guard)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	run(ctx, logger, runner, players, guard, observe)
}

// run steps the simulation at 60 frames per second until every script finished or ctx is cancelled.
func run(ctx context.Context, log *logrus.Logger, runner *simulation.Runner, players []*scripted, guard *ai.Agent, observe func()) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := float32(now.Sub(last).Seconds())
			last = now

			done := true
			for _, sp := range players {
				if !sp.advance(dt) {
					done = false
				}
			}
			if err := runner.Step(dt); err != nil {
				log.Errorf("step: %v", err)
			}
			observe()
			if runner.Frames()%60 == 0 {
				for _, sp := range players {
					cam := sp.p.Camera()
					log.WithFields(logrus.Fields{
						"character": sp.p.Name(),
						"state":     sp.p.ActiveState(),
						"camera":    cam.Position,
					}).Info("frame")
				}
				log.WithFields(logrus.Fields{"state": guard.ActiveState(), "position": guard.Position()}).Info("guard")
			}
			if done {
				log.Info("all scripts finished")
				return
			}
		}
	}
}

// level returns the trigger volumes of the demo level.
func level(log logrus.FieldLogger) *trigger.Set {
	return trigger.NewSet(
		trigger.Ladder("ladder", cube.Box(-1, 0, 4.5, 1, 4, 5.5), player.LadderPayload{
			Start:     mgl32.Vec3{0, 0, 5},
			End:       mgl32.Vec3{0, 4, 5},
			Exit:      mgl32.Vec3{0, 4, 6},
			Arc:       mgl32.Vec3{0, 0.4, 4.6},
			Facing:    0,
			LimitLook: true,
			YawLimit:  60,
		}),
		trigger.Cutscene("intro", cube.Box(-10, 0, -1, -8, 2, 1), func(p *player.Player) *player.CutscenePayload {
			return &player.CutscenePayload{
				Position: mgl32.Vec3{-9, 0, 0},
				Look:     mgl32.Vec3{10, 90, 0},
				Sequence: &timedSequence{remaining: 3},
				OnComplete: func() {
					log.WithField("character", p.Name()).Info("intro finished")
				},
			}
		}),
		trigger.KillZone("pit", cube.Box(20, -5, -2, 24, 0.5, 2), mgl32.Vec3{22, -5, 0}),
	)
}
